package handler

import (
	"kindev/internal/core"
	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

type TestCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
	commandRunner    ports.CommandRunner
}

func ProvideTestCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
	commandRunner ports.CommandRunner,
) TestCommandHandler {
	return TestCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
		commandRunner:    commandRunner,
	}
}

// Handle runs the acceptance test suite against the development cluster.
// The arguments go to pytest verbatim, so the usual selection flags all
// work: kindev test -- -k test_hub -x.
func (h *TestCommandHandler) Handle(pytestArgs []string) error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureBinaries("pytest", "kubectl"); err != nil {
		return err
	}

	routine := domain.TestRunRoutine(settings)
	inv := domain.Invocation{
		Argv:    append([]string{"pytest"}, pytestArgs...),
		Env:     settings.KubeEnv(),
		OnError: &routine,
	}
	_, err = h.commandRunner.Run(inv)
	return err
}
