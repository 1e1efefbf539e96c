// Package kicad drives the kicad-cli command-line tool: executable
// discovery, subprocess execution, and one function per export or check
// operation with its fixed flag set.
//
// No function retries, and none inspects subprocess output; kicad-cli
// writes its own report and artifact files. Exit statuses map to typed
// errors: [ViolationError] for the documented ERC/DRC violation code,
// [ExitError] for anything else.
package kicad

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

const executable = "kicad-cli"

// macOS application bundle locations, newest first.
var darwinPaths = []string{
	"/Applications/KiCad_9.0/KiCad.app/Contents/MacOS/kicad-cli",
	"/Applications/KiCad/KiCad.app/Contents/MacOS/kicad-cli",
}

// Locate finds the kicad-cli executable. On macOS it probes the known
// application bundle paths; elsewhere it resolves the name on PATH. It
// returns ErrNotFound when no executable exists, which callers should
// treat differently from a failed invocation.
func Locate() (string, error) {
	if runtime.GOOS == "darwin" {
		for _, p := range darwinPaths {
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
		return "", ErrNotFound
	}

	path, err := exec.LookPath(executable)
	if err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Tool is a handle on one kicad-cli executable.
type Tool struct {
	path   string
	logger *log.Logger
	runner Runner
}

// New returns a Tool that invokes the executable at path and logs through
// logger.
func New(path string, logger *log.Logger) *Tool {
	return &Tool{path: path, logger: logger, runner: execRunner{}}
}

// NewWithRunner is like New but executes commands through r. Tests use it
// to record argument lists without spawning processes.
func NewWithRunner(path string, logger *log.Logger, r Runner) *Tool {
	return &Tool{path: path, logger: logger, runner: r}
}

// Path returns the executable path the Tool was created with.
func (t *Tool) Path() string {
	return t.path
}

// run executes one kicad-cli invocation, echoing the command line first.
// op names the operation for diagnostics.
func (t *Tool) run(ctx context.Context, op string, args ...string) error {
	t.logger.Debugf("exec: %s %s", t.path, strings.Join(args, " "))

	code, err := t.runner.Run(ctx, t.path, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Op: op, Code: code}
	}
	return nil
}

// Version prints kicad-cli's version and build information to stdout.
func (t *Tool) Version(ctx context.Context) error {
	err := t.run(ctx, "version", "version", "--format=about")
	if err != nil {
		t.logError("KiCad version check", err)
	}
	return err
}

// logError prints the generic unexpected-exit diagnostic for what.
func (t *Tool) logError(what string, err error) {
	if exit, ok := err.(*ExitError); ok {
		t.logger.Errorf("%s failed with an unexpected exit code (%d)", what, exit.Code)
		return
	}
	t.logger.Errorf("%s failed: %v", what, err)
}
