package cluster_provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// mockCommandRunner implements ports.CommandRunner for testing
type mockCommandRunner struct {
	runFunc    func(inv domain.Invocation) (domain.ExecutionResult, error)
	detachFunc func(inv domain.Invocation) (ports.DetachedHandle, error)
	lookFunc   func(name string) (string, error)
}

func (m *mockCommandRunner) Run(inv domain.Invocation) (domain.ExecutionResult, error) {
	if m.runFunc != nil {
		return m.runFunc(inv)
	}
	return domain.ExecutionResult{}, nil
}

func (m *mockCommandRunner) Detach(inv domain.Invocation) (ports.DetachedHandle, error) {
	if m.detachFunc != nil {
		return m.detachFunc(inv)
	}
	return nil, nil
}

func (m *mockCommandRunner) LookPath(name string) (string, error) {
	if m.lookFunc != nil {
		return m.lookFunc(name)
	}
	return name, nil
}

func TestKindClient_Clusters(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{Stdout: "kindev\nother-cluster\n"}, nil
		},
	}

	client := ProvideKindClient(runner)
	settings := domain.CreateDefaultSettings()

	clusters, err := client.Clusters(settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"kindev", "other-cluster"}, clusters)
	assert.Equal(t, []string{"kind", "get", "clusters"}, captured.Argv)
	assert.Equal(t, settings.KubeEnv(), captured.Env)
	assert.True(t, captured.Capture)
	assert.True(t, captured.AllowFailure)
}

func TestKindClient_Clusters_Empty(t *testing.T) {
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			return domain.ExecutionResult{Stdout: "\n"}, nil
		},
	}

	client := ProvideKindClient(runner)

	clusters, err := client.Clusters(domain.CreateDefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestKindClient_Clusters_Error(t *testing.T) {
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			return domain.ExecutionResult{ExitCode: 1}, errors.New("exit status 1")
		},
	}

	client := ProvideKindClient(runner)

	_, err := client.Clusters(domain.CreateDefaultSettings())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kind get clusters failed")
}

func TestKindClient_CreateCluster(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKindClient(runner)

	err := client.CreateCluster(domain.CreateDefaultSettings(), "/tmp/kind-config.yaml")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"kind", "create", "cluster", "--name", domain.ClusterName, "--config", "/tmp/kind-config.yaml"},
		captured.Argv)
	assert.False(t, captured.Capture)
	assert.False(t, captured.AllowFailure)
	require.NotNil(t, captured.OnError)
	assert.Equal(t, "cluster provisioning failure", captured.OnError.Name)
}

func TestKindClient_DeleteCluster(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKindClient(runner)

	err := client.DeleteCluster(domain.CreateDefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"kind", "delete", "cluster", "--name", domain.ClusterName}, captured.Argv)
}

func TestKindClientInterface(t *testing.T) {
	var _ ports.ClusterProvider = (*KindClient)(nil)
}
