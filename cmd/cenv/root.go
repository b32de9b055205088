package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "cenv",
	Short: "Generates self-contained build environment folders",
	Long: `cenv prepares per-project build environments: it creates the
environment folder and writes a sourceable activation script that
prepends the environment's executable, include, library, man and
pkg-config directories to the caller's shell and can undo itself
again on deactivation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&debug, "debug", false, "enable debug logging",
	)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs a text handler on stderr. The default level
// is info; debug raises verbosity.
func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: level},
	)))
}
