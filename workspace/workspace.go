// Package workspace prepares environment folders on disk: it creates
// the directory, renders and seals the activation script, and reads
// environments back from their scripts.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/byte4ever/cenv/activate"
	"github.com/byte4ever/cenv/environ"
	"github.com/byte4ever/cenv/shcheck"
)

// ScriptName is the activation script file name inside an
// environment folder.
const ScriptName = "activate"

// CreateOptions control how an environment is materialized.
type CreateOptions struct {
	// Defaults adds the conventional prompt and suffix layout
	// before rendering.
	Defaults bool

	// Force overwrites an activation script even when it was
	// modified after it was generated.
	Force bool

	// Check runs the shell syntax checker on the written script.
	Check bool
}

// Create materializes the environment described by cfg and returns
// the path of the written activation script. cfg is updated in place
// with the resolved folder, the defaulted root, and (when requested)
// the default layout, so the definition embedded in the script shows
// the final values.
//
// An existing script is only replaced when it still matches its
// recorded fingerprint, unless opts.Force is set.
func Create(
	ctx context.Context,
	cfg *environ.Config,
	opts CreateOptions,
) (string, error) {
	const errCtx = "creating environment"

	if cfg.Folder == "" {
		return "", fmt.Errorf(
			"%s: folder must be set", errCtx,
		)
	}

	if err := os.Mkdir(
		cfg.Folder, 0o755,
	); err != nil && !errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf(
			"%s: creating directory %s: %w",
			errCtx, cfg.Folder, err,
		)
	}

	folder, err := filepath.Abs(cfg.Folder)
	if err == nil {
		folder, err = filepath.EvalSymlinks(folder)
	}

	if err != nil {
		return "", fmt.Errorf(
			"%s: resolving %s: %w",
			errCtx, cfg.Folder, err,
		)
	}

	cfg.Folder = folder

	if cfg.Root == "" {
		cfg.Root = folder
	}

	if opts.Defaults {
		cfg.ApplyDefaults()
	}

	scriptPath := filepath.Join(folder, ScriptName)

	if !opts.Force {
		ok, err := activate.Unmodified(scriptPath)
		if err != nil {
			return "", fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		if !ok {
			return "", fmt.Errorf(
				"%s: %s: locally modified, refusing to overwrite",
				errCtx, scriptPath,
			)
		}
	}

	if err := activate.WriteFile(
		scriptPath, cfg,
	); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := activate.Seal(scriptPath); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if opts.Check {
		if _, err := shcheck.Syntax(
			ctx, scriptPath,
		); err != nil {
			return "", fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}
	}

	slog.Info(
		"environment created",
		"folder", folder,
		"script", scriptPath,
	)

	return scriptPath, nil
}

// Inspect reads the environment definition embedded in the folder's
// activation script and reports whether the script still matches its
// recorded fingerprint.
func Inspect(folder string) (*environ.Config, bool, error) {
	const errCtx = "inspecting environment"

	scriptPath := filepath.Join(folder, ScriptName)

	by, err := os.ReadFile(scriptPath) //nolint:gosec // path from CLI flags
	if err != nil {
		return nil, false, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	cfg, err := activate.ExtractMeta(string(by))
	if err != nil {
		return nil, false, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	unmodified, err := activate.Unmodified(scriptPath)
	if err != nil {
		return nil, false, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return cfg, unmodified, nil
}
