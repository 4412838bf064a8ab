package handler

import (
	"kindev/internal/core"
	"kindev/internal/core/domain"
)

type ChangelogCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
}

func ProvideChangelogCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
) ChangelogCommandHandler {
	return ChangelogCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
	}
}

// Handle checks that a GitHub token is configured and then reports the
// generation itself as not implemented. The token check runs first so the
// command fails the same way it will once generation exists.
func (h *ChangelogCommandHandler) Handle() error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureGithubToken(settings); err != nil {
		return err
	}
	return domain.ErrNotImplemented
}
