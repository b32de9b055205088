package release

import "context"

// Pattern: Strategy -- swap release platform without
// changing update-check logic.

// Release is one published release of the tool.
type Release struct {
	// Tag is the release tag (e.g. "v1.4.0").
	Tag string

	// URL points at the release page. May be empty.
	URL string
}

// Feed looks up the latest published release.
type Feed interface {
	Latest(ctx context.Context) (Release, error)
}

// FeedFunc adapts a plain function to the Feed
// interface.
type FeedFunc func(ctx context.Context) (Release, error)

// Latest delegates to the wrapped function.
func (f FeedFunc) Latest(
	ctx context.Context,
) (Release, error) {
	return f(ctx)
}
