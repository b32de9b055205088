// Package shcheck validates generated shell scripts.
package shcheck

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Interpreter is the shell used for validation runs. The generated
// scripts rely on bash expansions (printf -v, ${!name}), so a plain
// POSIX shell is not enough.
const Interpreter = "bash"

// Syntax runs the interpreter in no-exec mode ("bash -n") on the
// script at path and returns its combined stdout+stderr output. The
// script is parsed, never executed.
func Syntax(
	ctx context.Context,
	path string,
) (string, error) {
	const errCtx = "checking script syntax"

	slog.Info(
		"checking syntax",
		"interpreter", Interpreter,
		"script", path,
	)

	cmd := exec.CommandContext(
		ctx, Interpreter, "-n", path,
	)

	by, err := cmd.CombinedOutput()

	slog.Info("output", "result", string(by))

	if err != nil {
		return string(by), fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	return string(by), nil
}
