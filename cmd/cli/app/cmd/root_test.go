package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"kindev/internal/core/domain"
)

func TestExitCodeForUsageError(t *testing.T) {
	err := &usageError{errors.New("unknown flag: --recrate")}

	assert.Equal(t, exitUsage, exitCodeFor(err))
}

func TestExitCodeForUnknownCommand(t *testing.T) {
	err := errors.New(`unknown command "clutser" for "kindev"`)

	assert.Equal(t, exitUsage, exitCodeFor(err))
}

func TestExitCodeForPreflightError(t *testing.T) {
	err := &domain.PreflightError{MissingBinaries: []string{"kind"}}

	assert.Equal(t, exitFailure, exitCodeFor(err))
}

func TestExitCodeForExecutionErrorPassesChildCodeThrough(t *testing.T) {
	err := &domain.ExecutionError{Command: "pytest", ExitCode: 5}

	assert.Equal(t, 5, exitCodeFor(err))
}

func TestExitCodeForSpawnFailureFallsBackToGenericFailure(t *testing.T) {
	err := &domain.ExecutionError{Command: "pytest", ExitCode: 0, Err: errors.New("fork failed")}

	assert.Equal(t, exitFailure, exitCodeFor(err))
}

func TestExitCodeForPlainError(t *testing.T) {
	assert.Equal(t, exitFailure, exitCodeFor(errors.New("something broke")))
}

func TestPreflightHintsNameTheTokenCommand(t *testing.T) {
	err := &domain.PreflightError{
		MissingBinaries: []string{"kind", "helm"},
		MissingSettings: []string{domain.KeyGithubAccessToken},
	}

	hints := preflightHints(err)

	assert.Len(t, hints, 2)
	assert.Contains(t, hints[0], "kind, helm")
	assert.Contains(t, hints[1], "kindev token set")
}
