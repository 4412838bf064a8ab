package handler

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kindev/internal/cli/output"
	"kindev/internal/core"
	"kindev/internal/core/domain"
)

type PortForwardCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
	prober           core.PortForwardProber

	// waitForInterrupt blocks until the user asks to stop. Swapped out in
	// tests so Handle returns immediately.
	waitForInterrupt func()
}

func ProvidePortForwardCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
	prober core.PortForwardProber,
) PortForwardCommandHandler {
	return PortForwardCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
		prober:           prober,
		waitForInterrupt: waitForInterruptSignal,
	}
}

func waitForInterruptSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals
}

func (h *PortForwardCommandHandler) Handle(service string, remotePort int) error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureBinaries("kubectl"); err != nil {
		return err
	}

	localURL := fmt.Sprintf("http://%s:%d", settings.PortForwardAddress, settings.PortForwardPort)
	output.PrintStep(fmt.Sprintf("Forwarding %s to service '%s' port %d", localURL, service, remotePort))

	outcome, forward, err := h.prober.Probe(settings, service, settings.PortForwardPort, remotePort)
	if err != nil {
		return err
	}
	defer forward.Terminate()

	switch outcome {
	case domain.ProbeSuccess:
		output.PrintSuccess(fmt.Sprintf("Service '%s' answered, ready at %s", service, localURL))
	case domain.ProbeSlowButAlive:
		output.PrintWarning(fmt.Sprintf("The tunnel is up but '%s' has not answered yet, it may still be starting", service))
	case domain.ProbeFailed:
		output.PrintWarning(fmt.Sprintf("Nothing answered on %s, check that '%s' exposes port %d", localURL, service, remotePort))
	}

	output.PrintInfo("Press Ctrl-C to stop the port-forward")
	h.waitForInterrupt()
	return nil
}
