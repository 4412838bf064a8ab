package domain

// ProbeOutcome classifies what a single bounded HTTP request learned about a
// freshly started port-forward. It is an observation, not an error: every
// outcome is reported to the user the same way.
type ProbeOutcome int

const (
	// ProbeFailed: the connection was refused or reset, nothing is
	// listening on the local side.
	ProbeFailed ProbeOutcome = iota
	// ProbeSlowButAlive: the connection was accepted but no response
	// arrived within the probe timeout. The tunnel exists, the backing
	// service is still warming up.
	ProbeSlowButAlive
	// ProbeSuccess: an HTTP response came back, regardless of status code.
	ProbeSuccess
)

func (o ProbeOutcome) String() string {
	switch o {
	case ProbeFailed:
		return "failed"
	case ProbeSlowButAlive:
		return "slow but alive"
	case ProbeSuccess:
		return "success"
	default:
		return "unknown"
	}
}
