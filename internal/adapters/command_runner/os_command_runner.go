package command_runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// Exit codes reported for commands that never ran: the shell's convention
// for a missing binary and for one that is not executable.
const (
	exitNotFound   = 127
	exitNoPermit   = 126
	exitSpawnOther = 1
)

// OsCommandRunner executes invocations using os/exec. It is also the
// diagnostic collector: failure routines run through the same spawn path as
// everything else.
type OsCommandRunner struct {
	out    io.Writer
	errOut io.Writer
	exit   func(int)
	echo   bool
}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{
		out:    os.Stdout,
		errOut: os.Stderr,
		exit:   os.Exit,
		echo:   true,
	}
}

// Run executes the invocation and blocks until the child finishes. On a
// non-zero exit or spawn failure it reports the failure, runs the
// invocation's diagnostic routine, and aborts the program with the child's
// exit code unless the invocation allows failure. The result and a typed
// error are returned in every failure mode so tolerant callers see the real
// exit code.
func (r *OsCommandRunner) Run(inv domain.Invocation) (domain.ExecutionResult, error) {
	if err := inv.Validate(); err != nil {
		return domain.ExecutionResult{}, err
	}

	quoted := shellescape.QuoteCommand(inv.Argv)
	r.echoCommand(quoted)

	cmd := r.buildCmd(inv)
	var stdout, stderr bytes.Buffer
	if inv.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = r.out
		cmd.Stderr = r.errOut
	}

	runErr := cmd.Run()
	r.echoTerminator()

	result := domain.ExecutionResult{
		ExitCode: exitCode(runErr),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if runErr == nil {
		return result, nil
	}

	fmt.Fprintf(r.errOut, "command failed with exit code %d: %s\n", result.ExitCode, quoted)
	if trimmed := strings.TrimSpace(result.Stderr); trimmed != "" {
		fmt.Fprintln(r.errOut, trimmed)
	}
	if inv.OnError != nil {
		r.Collect(*inv.OnError)
	}

	execErr := &domain.ExecutionError{Command: quoted, ExitCode: result.ExitCode}
	if _, isExit := asExitError(runErr); !isExit {
		execErr.Err = runErr
	}
	if !inv.AllowFailure {
		r.exit(result.ExitCode)
	}
	return result, execErr
}

// Detach starts the invocation and returns without waiting. The child's
// streams go to the null device; a reaper goroutine collects it when it
// eventually exits so terminated children do not linger as zombies.
func (r *OsCommandRunner) Detach(inv domain.Invocation) (ports.DetachedHandle, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	quoted := shellescape.QuoteCommand(inv.Argv)
	r.echoCommand(quoted + " &")

	cmd := r.buildCmd(inv)
	if err := cmd.Start(); err != nil {
		return nil, &domain.ExecutionError{Command: quoted, ExitCode: exitCode(err), Err: err}
	}
	go func() { _ = cmd.Wait() }()
	return &osDetachedHandle{process: cmd.Process}, nil
}

func (r *OsCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Collect runs every step of the routine in order with output captured.
// Step failures are printed and never stop the remaining steps; nothing a
// routine does can fail the surrounding operation.
func (r *OsCommandRunner) Collect(routine domain.DiagnosticRoutine) {
	fmt.Fprintf(r.errOut, "\ngathering diagnostics: %s\n", routine.Name)
	for _, step := range routine.Steps {
		fmt.Fprintf(r.errOut, "--- %s\n", step.Label)
		// Failures inside a step already report through Run; the routine
		// always moves on to the next step.
		result, _ := r.Run(domain.Invocation{
			Argv:         step.Argv,
			Env:          step.Env,
			Capture:      true,
			AllowFailure: true,
		})
		if trimmed := strings.TrimSpace(result.Stdout); trimmed != "" {
			fmt.Fprintln(r.errOut, trimmed)
		}
	}
}

func (r *OsCommandRunner) buildCmd(inv domain.Invocation) *exec.Cmd {
	cmd := exec.Command(inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...) // Extend environment instead of replacing
	}
	return cmd
}

func (r *OsCommandRunner) echoCommand(quoted string) {
	if r.echo {
		fmt.Fprintf(r.out, "$ %s\n", quoted)
	}
}

func (r *OsCommandRunner) echoTerminator() {
	if r.echo {
		fmt.Fprintln(r.out)
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := asExitError(err); ok {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) {
		return exitNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return exitNoPermit
	}
	return exitSpawnOther
}

func asExitError(err error) (*exec.ExitError, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

type osDetachedHandle struct {
	process *os.Process
}

func (h *osDetachedHandle) Pid() int {
	return h.process.Pid
}

func (h *osDetachedHandle) Terminate() error {
	if err := h.process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("terminating pid %d: %w", h.process.Pid, err)
	}
	return nil
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
var _ ports.DiagnosticCollector = (*OsCommandRunner)(nil)
