package container_orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

func TestKubectlClient_ApplyManifest(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKubectlClient(runner)
	settings := testSettings()

	err := client.ApplyManifest(settings, "https://docs.projectcalico.org/manifests/calico.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kubectl", "--context", settings.Context(),
		"apply", "-f", "https://docs.projectcalico.org/manifests/calico.yaml",
	}, captured.Argv)
	assert.Equal(t, settings.KubeEnv(), captured.Env)
	assert.False(t, captured.AllowFailure)
}

func TestKubectlClient_CreateNamespace(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKubectlClient(runner)
	settings := testSettings()

	err := client.CreateNamespace(settings, "kindev")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kubectl", "--context", settings.Context(),
		"create", "namespace", "kindev",
	}, captured.Argv)
	assert.True(t, captured.AllowFailure)
	assert.True(t, captured.Capture)
}

func TestKubectlClient_CreateNamespace_AlreadyExists(t *testing.T) {
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			return domain.ExecutionResult{
					ExitCode: 1,
					Stderr:   `Error from server (AlreadyExists): namespaces "kindev" already exists`,
				},
				&domain.ExecutionError{Command: "kubectl create namespace kindev", ExitCode: 1}
		},
	}

	client := ProvideKubectlClient(runner)

	assert.NoError(t, client.CreateNamespace(testSettings(), "kindev"))
}

func TestKubectlClient_CreateNamespace_OtherError(t *testing.T) {
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			return domain.ExecutionResult{ExitCode: 1, Stderr: "connection refused"},
				&domain.ExecutionError{Command: "kubectl create namespace kindev", ExitCode: 1}
		},
	}

	client := ProvideKubectlClient(runner)

	err := client.CreateNamespace(testSettings(), "kindev")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "create namespace kindev failed")
}

func TestKubectlClient_CreateServiceAccount(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKubectlClient(runner)
	settings := testSettings()

	err := client.CreateServiceAccount(settings, "kube-system", "tiller")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kubectl", "--context", settings.Context(),
		"--namespace", "kube-system",
		"create", "serviceaccount", "tiller",
	}, captured.Argv)
}

func TestKubectlClient_CreateClusterRoleBinding(t *testing.T) {
	var captured domain.Invocation
	runner := &mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			captured = inv
			return domain.ExecutionResult{}, nil
		},
	}

	client := ProvideKubectlClient(runner)
	settings := testSettings()

	err := client.CreateClusterRoleBinding(settings, "tiller", "cluster-admin", "kube-system", "tiller")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kubectl", "--context", settings.Context(),
		"create", "clusterrolebinding", "tiller",
		"--clusterrole", "cluster-admin",
		"--serviceaccount", "kube-system:tiller",
	}, captured.Argv)
}

func TestKubectlClient_PortForwardInvocation(t *testing.T) {
	client := ProvideKubectlClient(&mockCommandRunner{
		runFunc: func(inv domain.Invocation) (domain.ExecutionResult, error) {
			t.Fatal("building the invocation must not execute anything")
			return domain.ExecutionResult{}, nil
		},
	})
	settings := testSettings()
	settings.PortForwardAddress = "0.0.0.0"

	inv := client.PortForwardInvocation(settings, "proxy-public", 8080, 80)

	assert.Equal(t, []string{
		"kubectl", "--context", settings.Context(),
		"--namespace", settings.KubeNamespace,
		"port-forward",
		"--address", "0.0.0.0",
		"svc/proxy-public",
		"8080:80",
	}, inv.Argv)
	assert.Equal(t, settings.KubeEnv(), inv.Env)
	assert.False(t, inv.Capture)
}

func TestKubectlClientInterface(t *testing.T) {
	var _ ports.KubectlClient = (*KubectlClient)(nil)
}
