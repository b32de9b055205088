package main

import (
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/byte4ever/cenv/environ"
	"github.com/byte4ever/cenv/workspace"
)

var (
	showOutput string
	showVerify bool
)

var showCmd = &cobra.Command{
	Use:   "show <folder>",
	Short: "Show the definition recorded in an activation script",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(
		&showOutput, "output", "o", "text",
		"output format: text, json or yaml",
	)
	showCmd.Flags().BoolVar(
		&showVerify, "verify", false,
		"fail when the script was modified after generation",
	)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, unmodified, err := workspace.Inspect(args[0])
	if err != nil {
		return err
	}

	if showVerify && !unmodified {
		return fmt.Errorf(
			"%s: activation script was modified after generation",
			args[0],
		)
	}

	out := cmd.OutOrStdout()

	switch showOutput {
	case "text":
		printConfig(out, cfg)

	case "json":
		by, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding definition: %w", err)
		}

		fmt.Fprintln(out, string(by))

	case "yaml":
		by, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding definition: %w", err)
		}

		fmt.Fprint(out, string(by))

	default:
		return fmt.Errorf("unknown output format %q", showOutput)
	}

	return nil
}

func printConfig(out io.Writer, cfg *environ.Config) {
	fmt.Fprintf(out, "folder: %s\n", cfg.Folder)
	fmt.Fprintf(out, "root:   %s\n", cfg.Root)
	fmt.Fprintf(out, "prompt: %q\n", cfg.Prompt)

	printMap(out, "variables", cfg.Variables)
	printMap(out, "exports", cfg.Exports)

	printList(out, "executable suffixes", cfg.ExecSuffixes)
	printList(out, "include suffixes", cfg.IncludeSuffixes)
	printList(out, "info suffixes", cfg.InfoSuffixes)
	printList(out, "library suffixes", cfg.LibSuffixes)
	printList(out, "manpage suffixes", cfg.ManSuffixes)
	printList(out, "pkgconfig suffixes", cfg.PkgConfigSuffixes)
}

func printMap(out io.Writer, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	fmt.Fprintf(out, "%s:\n", label)

	for _, k := range keys {
		fmt.Fprintf(out, "  %s=%s\n", k, m[k])
	}
}

func printList(out io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(out, "%s:\n", label)

	for _, item := range items {
		fmt.Fprintf(out, "  %s\n", item)
	}
}
