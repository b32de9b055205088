// Package release defines a strategy interface for looking up the
// latest published release of the tool across hosting platforms.
//
// The Feed interface abstracts the lookup. Implementations exist for
// GitHub, GitLab, and self-hosted JSON documents in sub-packages.
// FeedFunc is a convenience adapter that lets plain functions satisfy
// the interface, and UpdateAvailable compares the fetched tag against
// the running version.
package release
