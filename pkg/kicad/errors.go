package kicad

import (
	"errors"
	"fmt"
)

// ExitViolations is the exit status kicad-cli documents for ERC and DRC
// runs that found rule violations (with --exit-code-violations).
const ExitViolations = 5

// ErrNotFound reports that no kicad-cli executable could be located. It is
// distinct from execution failures: the tool was never run.
var ErrNotFound = errors.New("kicad-cli not found")

// ViolationError is returned when ERC or DRC finds rule violations. The
// details live in the report file kicad-cli wrote, not in the error.
type ViolationError struct {
	Check      string // "ERC" or "DRC"
	Code       int
	ReportPath string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s violations found, see %s", e.Check, e.ReportPath)
}

// ExitError is returned for any other non-zero kicad-cli exit status.
type ExitError struct {
	Op   string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: kicad-cli exited with code %d", e.Op, e.Code)
}
