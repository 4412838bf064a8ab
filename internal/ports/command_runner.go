package ports

import "kindev/internal/core/domain"

// CommandRunner executes external commands described as invocations.
type CommandRunner interface {
	// Run spawns the invocation and blocks until the child finishes. A
	// non-zero exit aborts the program unless the invocation allows
	// failure; the real result is returned either way so tolerant callers
	// can inspect it.
	Run(inv domain.Invocation) (domain.ExecutionResult, error)
	// Detach spawns the invocation and returns immediately. Detached
	// children never capture output and are never awaited by the runner.
	Detach(inv domain.Invocation) (DetachedHandle, error)
	// LookPath resolves a binary name against PATH.
	LookPath(name string) (string, error)
}

// DetachedHandle is the caller's grip on a backgrounded child process.
type DetachedHandle interface {
	Pid() int
	// Terminate kills the child. Safe to call on an already-dead process.
	Terminate() error
}
