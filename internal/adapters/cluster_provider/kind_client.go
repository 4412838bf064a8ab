package cluster_provider

import (
	"fmt"
	"strings"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var _ ports.ClusterProvider = (*KindClient)(nil)

// KindClient implements ports.ClusterProvider using the kind CLI. Every
// call runs with KUBECONFIG pointed at the tool's dedicated kubeconfig so
// kind reads and writes credentials there and nowhere else.
type KindClient struct {
	commandRunner ports.CommandRunner
}

// ProvideKindClient creates a KindClient for Wire dependency injection.
func ProvideKindClient(runner ports.CommandRunner) *KindClient {
	return &KindClient{
		commandRunner: runner,
	}
}

// Clusters returns the names of all clusters kind knows about.
func (k *KindClient) Clusters(settings domain.Settings) ([]string, error) {
	result, err := k.commandRunner.Run(domain.Invocation{
		Argv:         []string{"kind", "get", "clusters"},
		Env:          settings.KubeEnv(),
		Capture:      true,
		AllowFailure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("kind get clusters failed: %w", err)
	}

	var clusters []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			clusters = append(clusters, line)
		}
	}
	return clusters, nil
}

// CreateCluster brings up the development cluster from the given kind
// config file. kind writes the new cluster's credentials into the
// kubeconfig named by the settings.
func (k *KindClient) CreateCluster(settings domain.Settings, configPath string) error {
	routine := domain.ClusterProvisioningRoutine(settings)
	_, err := k.commandRunner.Run(domain.Invocation{
		Argv:    []string{"kind", "create", "cluster", "--name", domain.ClusterName, "--config", configPath},
		Env:     settings.KubeEnv(),
		OnError: &routine,
	})
	if err != nil {
		return fmt.Errorf("kind create cluster failed: %w", err)
	}
	return nil
}

// DeleteCluster tears the development cluster down. kind treats deleting an
// absent cluster as a successful no-op.
func (k *KindClient) DeleteCluster(settings domain.Settings) error {
	_, err := k.commandRunner.Run(domain.Invocation{
		Argv: []string{"kind", "delete", "cluster", "--name", domain.ClusterName},
		Env:  settings.KubeEnv(),
	})
	if err != nil {
		return fmt.Errorf("kind delete cluster failed: %w", err)
	}
	return nil
}
