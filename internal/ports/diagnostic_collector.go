package ports

import "kindev/internal/core/domain"

// DiagnosticCollector gathers failure context by running a routine of
// read-only commands. Collect tolerates every step failure: steps report,
// they never abort, and nothing escapes the collector.
type DiagnosticCollector interface {
	Collect(routine domain.DiagnosticRoutine)
}
