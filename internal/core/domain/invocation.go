package domain

import (
	"fmt"
	"strings"
)

// Invocation describes a single external command execution: the argv to
// spawn, extra environment entries, and how the caller wants the child
// supervised. The zero value of the flags is the strict default: streams are
// inherited and a non-zero exit aborts the program.
type Invocation struct {
	Argv []string
	Env  []string // KEY=VALUE pairs appended to the parent environment
	Dir  string

	// Capture collects stdout and stderr into the ExecutionResult instead of
	// inheriting the parent streams.
	Capture bool

	// AllowFailure turns a non-zero exit into a returned error instead of a
	// program abort.
	AllowFailure bool

	// OnError is executed best-effort after a failure, before any abort.
	OnError *DiagnosticRoutine
}

func (i Invocation) Validate() error {
	if len(i.Argv) == 0 {
		return fmt.Errorf("invocation has empty argv")
	}
	if strings.TrimSpace(i.Argv[0]) == "" {
		return fmt.Errorf("invocation has empty program name")
	}
	return nil
}

// ExecutionResult reports how a finished child process exited. Stdout and
// Stderr are populated only for captured invocations.
type ExecutionResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExecutionError is returned when a child process exits non-zero or cannot
// be spawned at all.
type ExecutionError struct {
	Command  string // shell-quoted command line
	ExitCode int
	Err      error // underlying spawn error, nil for plain non-zero exits
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command '%s' failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command '%s' failed with exit code %d", e.Command, e.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// DiagnosticStep is one read-only command executed while gathering context
// after a failure.
type DiagnosticStep struct {
	Label string
	Argv  []string
	Env   []string
}

// DiagnosticRoutine is an ordered list of diagnostic steps. Routines are
// declared as data so they can be inspected and tested without running
// anything.
type DiagnosticRoutine struct {
	Name  string
	Steps []DiagnosticStep
}
