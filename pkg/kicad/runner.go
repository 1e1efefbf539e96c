package kicad

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes one external command and reports its exit status. The
// returned error is reserved for failures to run at all (executable
// missing, context cancelled before start); a non-zero exit is not an
// error at this layer.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// execRunner runs commands with os/exec, inheriting the parent's stdout
// and stderr so kicad-cli output streams straight to the terminal.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
