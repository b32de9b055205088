package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/byte4ever/cenv/release"
	"github.com/byte4ever/cenv/release/github"
	"github.com/byte4ever/cenv/release/gitlab"
	"github.com/byte4ever/cenv/release/jsonfeed"
)

// version is set at build time through -ldflags.
var version = "dev"

var (
	versionCheck bool
	versionFeed  feedFlags
)

// feedFlags bundles the release feed flag values.
type feedFlags struct {
	platform     string
	ghOwner      string
	ghRepo       string
	ghToken      string
	ghEnterprise string
	glHost       string
	glRepo       string
	glToken      string
	endpoint     string
	user         string
	password     string
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and optionally check for updates",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	fl := versionCmd.Flags()

	fl.BoolVar(
		&versionCheck, "check", false,
		"query the release feed for a newer version",
	)
	fl.StringVar(
		&versionFeed.platform, "feed", "github",
		"release feed platform: github, gitlab or json",
	)

	// GitHub feed.
	fl.StringVar(
		&versionFeed.ghOwner, "github-owner", "byte4ever",
		"GitHub repository owner",
	)
	fl.StringVar(
		&versionFeed.ghRepo, "github-repo", "cenv",
		"GitHub repository name",
	)
	fl.StringVar(
		&versionFeed.ghToken, "github-token", "",
		"GitHub access token (optional)",
	)
	fl.StringVar(
		&versionFeed.ghEnterprise, "github-enterprise-host", "",
		"GitHub Enterprise host (optional)",
	)

	// GitLab feed.
	fl.StringVar(
		&versionFeed.glHost, "gitlab-host", "",
		"GitLab host (defaults to gitlab.com)",
	)
	fl.StringVar(
		&versionFeed.glRepo, "gitlab-repo", "byte4ever/cenv",
		"GitLab project path",
	)
	fl.StringVar(
		&versionFeed.glToken, "gitlab-token", "",
		"GitLab access token (optional)",
	)

	// JSON document feed.
	fl.StringVar(
		&versionFeed.endpoint, "json-endpoint", "",
		"JSON release document URL",
	)
	fl.StringVar(
		&versionFeed.user, "json-user", "",
		"JSON feed basic auth user (optional)",
	)
	fl.StringVar(
		&versionFeed.password, "json-password", "",
		"JSON feed basic auth password (optional)",
	)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, version)

	if !versionCheck {
		return nil
	}

	feed, err := newFeed(versionFeed)
	if err != nil {
		return err
	}

	// A broken or unreachable feed must not fail the version
	// command itself.
	rel, err := feed.Latest(cmd.Context())
	if err != nil {
		slog.Warn("release check failed", "error", err)

		return nil
	}

	if !release.UpdateAvailable(version, rel.Tag) {
		fmt.Fprintln(out, "up to date")

		return nil
	}

	fmt.Fprintf(out, "update available: %s", rel.Tag)

	if rel.URL != "" {
		fmt.Fprintf(out, " (%s)", rel.URL)
	}

	fmt.Fprintln(out)

	return nil
}

// newFeed creates the release feed matching the platform name.
// Pattern: Factory -- selects platform implementation at runtime.
func newFeed(ff feedFlags) (release.Feed, error) {
	const errCtx = "creating release feed"

	switch ff.platform {
	case "github":
		feed, err := github.NewFeed(github.Config{
			RepoOwner:      ff.ghOwner,
			Repo:           ff.ghRepo,
			AccessToken:    ff.ghToken,
			EnterpriseHost: ff.ghEnterprise,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return feed, nil

	case "gitlab":
		feed, err := gitlab.NewFeed(gitlab.Config{
			Host:        ff.glHost,
			Repo:        ff.glRepo,
			AccessToken: ff.glToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return feed, nil

	case "json":
		feed, err := jsonfeed.NewFeed(jsonfeed.Config{
			Endpoint: ff.endpoint,
			User:     ff.user,
			Password: ff.password,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return feed, nil

	default:
		return nil, fmt.Errorf(
			"%s: unknown platform %q", errCtx, ff.platform,
		)
	}
}
