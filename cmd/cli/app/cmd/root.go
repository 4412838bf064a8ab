package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kindev/internal/cli/output"
	"kindev/internal/core/domain"
)

// Exit codes are part of the scripting contract: 2 means the invocation was
// wrong, a wrapped tool's own exit code passes through untouched, and
// everything else (preflight failures included) is 1.
const (
	exitFailure = 1
	exitUsage   = 2
)

var rootCmd = &cobra.Command{
	Use:   "kindev",
	Short: "Local Kubernetes development for the JupyterHub chart",
	Long: `Kindev wraps the tools a chart developer juggles all day: kind, docker,
kubectl, helm, chartpress, and the linters. One command per workflow, with
the cluster state, kubeconfig, and context handled for you.

Configuration lives in a .env file in the working directory; a template is
created on first run. The process environment overrides it for everything
except credentials.

Common workflows:
  kindev cluster create       Bring up the local kind cluster
  kindev chart-upgrade        Build images and upgrade the chart release
  kindev port-forward         Reach the hub on localhost
  kindev test                 Run the acceptance tests against the cluster`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(exitCodeFor(err))
	}
}

// usageError marks errors caused by the invocation itself rather than by
// anything the tool tried to do.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func exitCodeFor(err error) int {
	var usage *usageError
	if errors.As(err, &usage) || isUnknownCommand(err) {
		return exitUsage
	}
	var execution *domain.ExecutionError
	if errors.As(err, &execution) && execution.ExitCode > 0 {
		return execution.ExitCode
	}
	return exitFailure
}

// isUnknownCommand matches the error cobra raises for a command it does not
// know. Cobra gives us no typed error for this case.
func isUnknownCommand(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}

func reportError(err error) {
	output.PrintError(err.Error())

	var usage *usageError
	if errors.As(err, &usage) || isUnknownCommand(err) {
		output.PrintInfo("Run 'kindev --help' for usage")
		return
	}

	var preflight *domain.PreflightError
	if errors.As(err, &preflight) {
		for _, hint := range preflightHints(preflight) {
			output.PrintInfo(hint)
		}
	}
}

func preflightHints(err *domain.PreflightError) []string {
	var hints []string
	if len(err.MissingBinaries) > 0 {
		hints = append(hints, fmt.Sprintf(
			"Install the missing tools and make sure they are on PATH: %s",
			strings.Join(err.MissingBinaries, ", "),
		))
	}
	for _, setting := range err.MissingSettings {
		if setting == domain.KeyGithubAccessToken {
			hints = append(hints, "Store a token with 'kindev token set' or export GITHUB_ACCESS_TOKEN")
		}
	}
	return hints
}
