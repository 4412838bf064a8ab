package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotImplemented marks an operation that is wired into the command tree
// but intentionally not built yet.
var ErrNotImplemented = errors.New("not implemented")

// PreflightError lists everything missing from the environment before an
// operation could start. It is always raised before the first side effect.
type PreflightError struct {
	MissingBinaries []string
	MissingSettings []string
}

func (e *PreflightError) Error() string {
	var parts []string
	if len(e.MissingBinaries) > 0 {
		parts = append(parts, fmt.Sprintf("missing required binaries: %s", strings.Join(e.MissingBinaries, ", ")))
	}
	if len(e.MissingSettings) > 0 {
		parts = append(parts, fmt.Sprintf("missing required settings: %s", strings.Join(e.MissingSettings, ", ")))
	}
	if len(parts) == 0 {
		return "preflight failed"
	}
	return strings.Join(parts, "; ")
}
