package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byte4ever/cenv/environ"
	"github.com/byte4ever/cenv/workspace"
)

var (
	createFile       string
	createPrompt     string
	createRoot       string
	createNoDefaults bool
	createForce      bool
	createCheck      bool

	createDefines     []string
	createDefineFiles []string
	createExports     []string

	createExecSuffixes      []string
	createIncludeSuffixes   []string
	createInfoSuffixes      []string
	createLibSuffixes       []string
	createManSuffixes       []string
	createPkgConfigSuffixes []string
)

var createCmd = &cobra.Command{
	Use:   "create <folder>",
	Short: "Create an environment folder and its activation script",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

//nolint:funlen // CLI flag setup is inherently long
func init() {
	fl := createCmd.Flags()

	fl.StringVarP(
		&createFile, "file", "f", "",
		"environment definition file (YAML or JSON)",
	)
	fl.StringVarP(
		&createPrompt, "prompt", "p", "",
		"prompt prefix shown while the environment is active",
	)
	fl.StringVarP(
		&createRoot, "root", "r", "",
		"root the suffixes are resolved against (defaults to the folder)",
	)
	fl.BoolVarP(
		&createNoDefaults, "no-defaults", "n", false,
		"skip the default prompt and suffix layout",
	)
	fl.BoolVar(
		&createForce, "force", false,
		"overwrite a locally modified activation script",
	)
	fl.BoolVar(
		&createCheck, "check", false,
		"run a shell syntax check on the written script",
	)

	fl.StringArrayVarP(
		&createDefines, "define", "D", nil,
		"substitution variable as KEY=VALUE (repeatable)",
	)
	fl.StringArrayVar(
		&createDefineFiles, "define-file", nil,
		"file of KEY=VALUE substitution variables (repeatable)",
	)
	fl.StringArrayVarP(
		&createExports, "export", "E", nil,
		"exported variable as KEY=VALUE (repeatable)",
	)

	fl.StringArrayVarP(
		&createExecSuffixes, "exec-suffix", "e", nil,
		"executable directory suffix (repeatable)",
	)
	fl.StringArrayVarP(
		&createIncludeSuffixes, "include-suffix", "i", nil,
		"include directory suffix (repeatable)",
	)
	fl.StringArrayVarP(
		&createInfoSuffixes, "info-suffix", "I", nil,
		"info page directory suffix (repeatable)",
	)
	fl.StringArrayVarP(
		&createLibSuffixes, "lib-suffix", "l", nil,
		"library directory suffix (repeatable)",
	)
	fl.StringArrayVarP(
		&createManSuffixes, "man-suffix", "m", nil,
		"man page directory suffix (repeatable)",
	)
	fl.StringArrayVarP(
		&createPkgConfigSuffixes, "pkgconfig-suffix", "P", nil,
		"pkg-config directory suffix (repeatable)",
	)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg := &environ.Config{}

	if createFile != "" {
		loaded, err := environ.LoadFile(createFile)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	overlay, err := overlayFromFlags()
	if err != nil {
		return err
	}

	cfg.Merge(overlay)
	cfg.Folder = args[0]

	_, err = workspace.Create(
		cmd.Context(),
		cfg,
		workspace.CreateOptions{
			Defaults: !createNoDefaults,
			Force:    createForce,
			Check:    createCheck,
		},
	)

	return err
}

// overlayFromFlags builds the config overlay described by the
// command line. Flag values take precedence over the definition
// file when merged, and --define pairs over --define-file entries.
func overlayFromFlags() (*environ.Config, error) {
	variables, err := environ.LoadVarFiles(createDefineFiles)
	if err != nil {
		return nil, err
	}

	defines, err := parsePairs(createDefines, "--define")
	if err != nil {
		return nil, err
	}

	for key, value := range defines {
		variables[key] = value
	}

	exports, err := parsePairs(createExports, "--export")
	if err != nil {
		return nil, err
	}

	return &environ.Config{
		Prompt:            createPrompt,
		Root:              createRoot,
		Variables:         variables,
		Exports:           exports,
		ExecSuffixes:      createExecSuffixes,
		IncludeSuffixes:   createIncludeSuffixes,
		InfoSuffixes:      createInfoSuffixes,
		LibSuffixes:       createLibSuffixes,
		ManSuffixes:       createManSuffixes,
		PkgConfigSuffixes: createPkgConfigSuffixes,
	}, nil
}

// parsePairs converts repeated KEY=VALUE flag values into a map.
func parsePairs(
	pairs []string,
	flagName string,
) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"%s must be KEY=VALUE, got %q",
				flagName, pair,
			)
		}

		out[parts[0]] = parts[1]
	}

	return out, nil
}
