package core

import (
	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// Preflight checks that everything an operation is about to depend on is
// actually present, before the first side effect happens. A command either
// fails here, completely, or runs with all its tools available.
type Preflight struct {
	commandRunner ports.CommandRunner
}

func ProvidePreflight(commandRunner ports.CommandRunner) Preflight {
	return Preflight{commandRunner: commandRunner}
}

// EnsureBinaries resolves every name against PATH and reports all missing
// ones at once, so the user fixes their environment in one round.
func (p *Preflight) EnsureBinaries(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := p.commandRunner.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &domain.PreflightError{MissingBinaries: missing}
	}
	return nil
}

// EnsureGithubToken verifies a real token is configured, via the
// environment file, the environment, or the keyring.
func (p *Preflight) EnsureGithubToken(settings domain.Settings) error {
	if !settings.HasGithubToken() {
		return &domain.PreflightError{MissingSettings: []string{domain.KeyGithubAccessToken}}
	}
	return nil
}
