package core

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

const (
	calicoManifestURL = "https://docs.projectcalico.org/v3.10/manifests/calico.yaml"

	tillerServiceAccount     = "tiller"
	tillerClusterRoleBinding = "tiller"
	tillerDeployment         = "tiller-deploy"
	kubeSystemNamespace      = "kube-system"

	nodesReadyTimeout  = 5 * time.Minute
	tillerReadyTimeout = 2 * time.Minute
)

// ClusterManager orchestrates the local development cluster lifecycle:
// bringing it up from nothing, waking a stopped one, and tearing it down.
// Each step is a separate method so handlers can report progress between
// them; the handler owns the ordering.
type ClusterManager struct {
	clusterProvider ports.ClusterProvider
	containerEngine ports.ContainerEngine
	kubectlClient   ports.KubectlClient
	helmClient      ports.HelmClient
	clusterObserver ports.ClusterObserver
	fileSystem      ports.FileSystem
	configGenerator *KindConfigGenerator
}

func ProvideClusterManager(
	clusterProvider ports.ClusterProvider,
	containerEngine ports.ContainerEngine,
	kubectlClient ports.KubectlClient,
	helmClient ports.HelmClient,
	clusterObserver ports.ClusterObserver,
	fileSystem ports.FileSystem,
	configGenerator *KindConfigGenerator,
) *ClusterManager {
	return &ClusterManager{
		clusterProvider: clusterProvider,
		containerEngine: containerEngine,
		kubectlClient:   kubectlClient,
		helmClient:      helmClient,
		clusterObserver: clusterObserver,
		fileSystem:      fileSystem,
		configGenerator: configGenerator,
	}
}

// CurrentState determines where the development cluster is in its
// lifecycle. A cluster kind knows about whose control-plane container is
// not running counts as stopped, which is what a host reboot leaves behind.
func (m *ClusterManager) CurrentState(settings domain.Settings) (domain.ClusterState, error) {
	clusters, err := m.clusterProvider.Clusters(settings)
	if err != nil {
		return domain.ClusterAbsent, fmt.Errorf("failed to list clusters: %v", err)
	}
	if !slices.Contains(clusters, domain.ClusterName) {
		return domain.ClusterAbsent, nil
	}

	running, err := m.containerEngine.ContainerRunning(domain.ControlPlaneContainer())
	if err != nil {
		return domain.ClusterAbsent, fmt.Errorf("failed to inspect control plane container: %v", err)
	}
	if running {
		return domain.ClusterRunning, nil
	}
	return domain.ClusterStopped, nil
}

// CreateCluster renders the kind config, brings the cluster up, and
// verifies the kubeconfig kind wrote points at the expected context.
func (m *ClusterManager) CreateCluster(settings domain.Settings) error {
	if err := m.fileSystem.EnsureDirExists(settings.Kubeconfig); err != nil {
		return fmt.Errorf("failed to prepare kubeconfig directory: %v", err)
	}

	config, err := m.configGenerator.Generate(settings)
	if err != nil {
		return err
	}

	configDir, err := m.fileSystem.TempDir("kindev-cluster")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %v", err)
	}
	defer m.fileSystem.RemoveAll(configDir)

	configPath := filepath.Join(configDir, "kind-config.yaml")
	if err := m.fileSystem.WriteFile(configPath, config, ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to write kind config: %v", err)
	}

	if err := m.clusterProvider.CreateCluster(settings, configPath); err != nil {
		return err
	}

	kubeContext, err := m.clusterObserver.CurrentContext(settings)
	if err != nil {
		return fmt.Errorf("failed to read context from %s: %v", settings.Kubeconfig, err)
	}
	if kubeContext != settings.Context() {
		return fmt.Errorf("kubeconfig context '%s' does not match expected context '%s'", kubeContext, settings.Context())
	}
	return nil
}

// CreateWorkNamespace creates the namespace the chart installs into.
// Creating it again over an existing cluster is fine.
func (m *ClusterManager) CreateWorkNamespace(settings domain.Settings) error {
	return m.kubectlClient.CreateNamespace(settings, settings.KubeNamespace)
}

// InstallNetworking applies Calico and waits until every node reports
// Ready. The cluster config disables the default CNI, so nodes stay
// NotReady until this has run.
func (m *ClusterManager) InstallNetworking(ctx context.Context, settings domain.Settings) error {
	if err := m.kubectlClient.ApplyManifest(settings, calicoManifestURL); err != nil {
		return err
	}
	return m.clusterObserver.WaitNodesReady(ctx, settings, nodesReadyTimeout)
}

// InstallTiller sets up the RBAC tiller needs, runs helm init, and waits
// for the tiller deployment to come up so the first chart install does not
// race it.
func (m *ClusterManager) InstallTiller(ctx context.Context, settings domain.Settings) error {
	if err := m.kubectlClient.CreateServiceAccount(settings, kubeSystemNamespace, tillerServiceAccount); err != nil {
		return err
	}
	err := m.kubectlClient.CreateClusterRoleBinding(
		settings,
		tillerClusterRoleBinding,
		"cluster-admin",
		kubeSystemNamespace,
		tillerServiceAccount,
	)
	if err != nil {
		return err
	}
	if err := m.helmClient.Init(settings, tillerServiceAccount); err != nil {
		return err
	}
	return m.clusterObserver.WaitDeploymentAvailable(ctx, settings, kubeSystemNamespace, tillerDeployment, tillerReadyTimeout)
}

// StartStoppedCluster starts the existing control-plane container and
// waits for the node to settle instead of re-provisioning from scratch.
func (m *ClusterManager) StartStoppedCluster(ctx context.Context, settings domain.Settings) error {
	if err := m.containerEngine.StartContainer(domain.ControlPlaneContainer()); err != nil {
		return err
	}
	return m.clusterObserver.WaitNodesReady(ctx, settings, nodesReadyTimeout)
}

// DeleteCluster tears the development cluster down.
func (m *ClusterManager) DeleteCluster(settings domain.Settings) error {
	return m.clusterProvider.DeleteCluster(settings)
}
