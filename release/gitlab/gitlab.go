package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/byte4ever/cenv/release"
)

// Config holds the settings needed to query GitLab releases.
type Config struct {
	// Host is the base URL of the GitLab instance
	// (e.g. "https://gitlab.com").
	Host string
	// Repo is the full project path
	// (e.g. "org/project").
	Repo string
	// AccessToken is an optional personal or project
	// access token. Anonymous access works for public
	// projects.
	AccessToken string
}

// Feed reads the latest release from GitLab.
//
// Pattern: Strategy -- implements release.Feed.
type Feed struct {
	client *gl.Client
	host   string
	repo   string
}

// NewFeed validates cfg and returns a Feed ready to
// query releases.
func NewFeed(cfg Config) (*Feed, error) {
	const errCtx = "creating gitlab release feed"

	if cfg.Repo == "" {
		return nil, fmt.Errorf(
			"%s: repo must be set", errCtx,
		)
	}

	host := cfg.Host
	if host == "" {
		host = "https://gitlab.com"
	}

	// Release URLs are built by joining host and repo with
	// a slash, so a configured trailing slash must go.
	host = strings.TrimRight(host, "/")

	client, err := gl.NewClient(
		cfg.AccessToken,
		gl.WithBaseURL(host),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: new client: %w", errCtx, err,
		)
	}

	return &Feed{
		client: client,
		host:   host,
		repo:   cfg.Repo,
	}, nil
}

// Latest returns the most recently published release.
// GitLab orders releases newest first, so only the
// first page entry is requested.
func (f *Feed) Latest(
	ctx context.Context,
) (release.Release, error) {
	const errCtx = "fetching gitlab release"

	releases, _, err := f.client.Releases.ListReleases(
		f.repo,
		&gl.ListReleasesOptions{
			ListOptions: gl.ListOptions{PerPage: 1},
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return release.Release{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	if len(releases) == 0 {
		return release.Release{}, fmt.Errorf(
			"%s: no releases published", errCtx,
		)
	}

	tag := releases[0].TagName

	slog.Info("fetched latest release", "tag", tag)

	return release.Release{
		Tag: tag,
		URL: f.host + "/" + f.repo +
			"/-/releases/" + tag,
	}, nil
}
