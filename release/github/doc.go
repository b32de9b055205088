// Package github implements a release.Feed that reads the latest
// published release from GitHub (cloud or enterprise). Configure with
// a Config containing the repository owner and name; an access token
// is only needed for private repositories or to lift rate limits. Set
// EnterpriseHost for GitHub Enterprise installations.
package github
