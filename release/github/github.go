package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	gh "github.com/google/go-github/v68/github"

	"github.com/byte4ever/cenv/release"
)

// Config holds the settings needed to query GitHub releases.
type Config struct {
	// RepoOwner is the GitHub user or organisation
	// that owns the repository.
	RepoOwner string
	// Repo is the repository name (without owner).
	Repo string
	// AccessToken is an optional personal access
	// token. Anonymous access works for public
	// repositories but is rate limited.
	AccessToken string
	// EnterpriseHost is an optional GitHub Enterprise
	// hostname (e.g. "git.corp.example.com"). Leave
	// empty for github.com.
	EnterpriseHost string
}

// Feed reads the latest release from GitHub.
//
// Pattern: Strategy -- implements release.Feed.
type Feed struct {
	client    *gh.Client
	repoOwner string
	repo      string
}

// NewFeed validates cfg and returns a Feed ready to
// query releases.
func NewFeed(cfg Config) (*Feed, error) {
	const errCtx = "creating github release feed"

	if cfg.RepoOwner == "" {
		return nil, fmt.Errorf(
			"%s: repo owner must be set", errCtx,
		)
	}

	if cfg.Repo == "" {
		return nil, fmt.Errorf(
			"%s: repo must be set", errCtx,
		)
	}

	client := gh.NewClient(nil)

	if cfg.AccessToken != "" {
		client = client.WithAuthToken(cfg.AccessToken)
	}

	if cfg.EnterpriseHost != "" {
		baseURL := "https://" +
			cfg.EnterpriseHost + "/api/v3/"
		uploadURL := "https://" +
			cfg.EnterpriseHost + "/api/uploads/"

		var err error

		client, err = client.WithEnterpriseURLs(
			baseURL, uploadURL,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: enterprise urls: %w",
				errCtx, err,
			)
		}
	}

	return &Feed{
		client:    client,
		repoOwner: cfg.RepoOwner,
		repo:      cfg.Repo,
	}, nil
}

// Latest returns the most recent published release. A
// repository without releases (HTTP 404) is reported
// as an error.
func (f *Feed) Latest(
	ctx context.Context,
) (release.Release, error) {
	const errCtx = "fetching github release"

	rel, resp, err := f.client.Repositories.GetLatestRelease(
		ctx, f.repoOwner, f.repo,
	)
	if err == nil {
		slog.Info(
			"fetched latest release",
			"tag", rel.GetTagName(),
		)

		return release.Release{
			Tag: rel.GetTagName(),
			URL: rel.GetHTMLURL(),
		}, nil
	}

	// HTTP 404: the repository has no published
	// releases.
	if resp != nil &&
		resp.StatusCode == http.StatusNotFound {
		return release.Release{}, fmt.Errorf(
			"%s: no releases published", errCtx,
		)
	}

	// Log the response body for debugging.
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close() //nolint:errcheck

		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			slog.Warn(
				"cannot read response body",
				"error", readErr,
			)
		} else {
			slog.Warn(
				"github response",
				"body", string(rb),
			)
		}
	}

	return release.Release{}, fmt.Errorf(
		"%s: %w", errCtx, err,
	)
}
