package release

import (
	"strings"

	"golang.org/x/mod/semver"
)

// UpdateAvailable reports whether latest is strictly newer than
// current. Tags are compared as semantic versions; a missing "v"
// prefix is tolerated on either side. A current version that is not
// a semantic version (e.g. a development build) always counts as
// older than a valid latest tag.
func UpdateAvailable(current, latest string) bool {
	return semver.Compare(
		canonical(latest), canonical(current),
	) > 0
}

func canonical(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "v") {
		return tag
	}

	return "v" + tag
}
