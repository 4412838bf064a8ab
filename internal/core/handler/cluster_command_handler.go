package handler

import (
	"context"
	"fmt"

	"kindev/internal/cli/output"
	"kindev/internal/cli/progress"
	"kindev/internal/core"
	"kindev/internal/core/domain"
)

type ClusterCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
	clusterManager   *core.ClusterManager
}

func ProvideClusterCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
	clusterManager *core.ClusterManager,
) ClusterCommandHandler {
	return ClusterCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
		clusterManager:   clusterManager,
	}
}

func (h *ClusterCommandHandler) HandleCreate(recreate bool) error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureBinaries("kind", "docker", "kubectl", "helm"); err != nil {
		return err
	}

	state, err := h.clusterManager.CurrentState(settings)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if recreate && state != domain.ClusterAbsent {
		output.PrintStep("Deleting existing cluster")
		if err := h.clusterManager.DeleteCluster(settings); err != nil {
			return err
		}
		state = domain.ClusterAbsent
	}

	switch state {
	case domain.ClusterRunning:
		output.PrintSuccess("Cluster is already running")
		return nil
	case domain.ClusterStopped:
		return h.startStopped(ctx, settings)
	default:
		return h.provision(ctx, settings)
	}
}

func (h *ClusterCommandHandler) provision(ctx context.Context, settings domain.Settings) error {
	output.PrintHeader("Creating development cluster")
	fmt.Println()

	steps := []string{"Create cluster", "Create namespace", "Install networking", "Install tiller"}
	tracker := progress.NewTrackerWithVerb(steps, "Running")
	tracker.Start()

	tracker.StartItem(0)
	err := h.clusterManager.CreateCluster(settings)
	if err != nil {
		tracker.CompleteItem(0, err)
		tracker.PrintItemComplete(0)
		tracker.Stop()
		return err
	}
	tracker.CompleteItem(0, nil)
	tracker.PrintItemComplete(0)

	tracker.StartItem(1)
	err = h.clusterManager.CreateWorkNamespace(settings)
	if err != nil {
		tracker.CompleteItem(1, err)
		tracker.PrintItemComplete(1)
		tracker.Stop()
		return err
	}
	tracker.CompleteItem(1, nil)
	tracker.PrintItemComplete(1)

	tracker.StartItem(2)
	err = h.clusterManager.InstallNetworking(ctx, settings)
	if err != nil {
		tracker.CompleteItem(2, err)
		tracker.PrintItemComplete(2)
		tracker.Stop()
		return err
	}
	tracker.CompleteItem(2, nil)
	tracker.PrintItemComplete(2)

	tracker.StartItem(3)
	err = h.clusterManager.InstallTiller(ctx, settings)
	if err != nil {
		tracker.CompleteItem(3, err)
		tracker.PrintItemComplete(3)
		tracker.Stop()
		return err
	}
	tracker.CompleteItem(3, nil)
	tracker.PrintItemComplete(3)

	tracker.Stop()
	fmt.Println()
	output.PrintSuccess(fmt.Sprintf("Cluster '%s' is ready, context %s", domain.ClusterName, settings.Context()))
	return nil
}

func (h *ClusterCommandHandler) startStopped(ctx context.Context, settings domain.Settings) error {
	output.PrintHeader("Starting stopped cluster")
	fmt.Println()

	tracker := progress.NewTrackerWithVerb([]string{"Start control plane"}, "Running")
	tracker.Start()

	tracker.StartItem(0)
	err := h.clusterManager.StartStoppedCluster(ctx, settings)
	tracker.CompleteItem(0, err)
	tracker.PrintItemComplete(0)
	tracker.Stop()
	if err != nil {
		return err
	}

	fmt.Println()
	output.PrintSuccess("Cluster is running again")
	return nil
}

func (h *ClusterCommandHandler) HandleDelete() error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureBinaries("kind"); err != nil {
		return err
	}

	if err := h.clusterManager.DeleteCluster(settings); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Cluster '%s' deleted", domain.ClusterName))
	return nil
}
