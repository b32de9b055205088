package jsonfeed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/cenv/release"
)

// Config holds the settings needed to poll a JSON
// version feed.
type Config struct {
	// Endpoint is the full URL of the feed document
	// (e.g. "https://dl.example.com/cenv/latest.json").
	Endpoint string
	// User enables HTTP basic auth when set.
	User string
	// Password is the basic auth password (or access
	// token).
	Password string
}

// Feed reads the latest release from a self-hosted
// JSON document.
//
// Pattern: Strategy -- implements release.Feed.
type Feed struct {
	endpoint string
	user     string
	password string
}

// document is the wire format of the feed:
// {"tag": "v1.2.3", "url": "https://..."}.
type document struct {
	Tag string `json:"tag"`
	URL string `json:"url,omitempty"`
}

// NewFeed validates cfg and returns a Feed ready to
// poll.
func NewFeed(cfg Config) (*Feed, error) {
	const errCtx = "creating json release feed"

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf(
			"%s: endpoint must be set", errCtx,
		)
	}

	if cfg.User != "" && cfg.Password == "" {
		return nil, fmt.Errorf(
			"%s: password must be set", errCtx,
		)
	}

	return &Feed{
		endpoint: cfg.Endpoint,
		user:     cfg.User,
		password: cfg.Password,
	}, nil
}

// Latest fetches and decodes the feed document.
func (f *Feed) Latest(
	ctx context.Context,
) (release.Release, error) {
	const errCtx = "fetching json release feed"

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, f.endpoint, nil,
	)
	if err != nil {
		return release.Release{}, fmt.Errorf(
			"%s: build request: %w", errCtx, err,
		)
	}

	req.Header.Set("Accept", "application/json")

	if f.user != "" {
		req.SetBasicAuth(f.user, f.password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return release.Release{}, fmt.Errorf(
			"%s: send request: %w", errCtx, err,
		)
	}

	defer resp.Body.Close() //nolint:errcheck

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return release.Release{}, fmt.Errorf(
			"%s: read response: %w", errCtx, err,
		)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn(
			"feed response",
			"status", resp.Status,
			"body", string(rb),
		)

		return release.Release{}, fmt.Errorf(
			"%s: unexpected status %d",
			errCtx, resp.StatusCode,
		)
	}

	var doc document

	if err := json.Unmarshal(rb, &doc); err != nil {
		return release.Release{}, fmt.Errorf(
			"%s: decode document: %w", errCtx, err,
		)
	}

	if doc.Tag == "" {
		return release.Release{}, fmt.Errorf(
			"%s: document has no tag", errCtx,
		)
	}

	return release.Release{
		Tag: doc.Tag,
		URL: doc.URL,
	}, nil
}
