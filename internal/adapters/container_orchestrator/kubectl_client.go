package container_orchestrator

import (
	"fmt"
	"strings"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var _ ports.KubectlClient = (*KubectlClient)(nil)

// KubectlClient implements ports.KubectlClient by shelling out to kubectl
// with the context and kubeconfig pinned on every call.
type KubectlClient struct {
	commandRunner ports.CommandRunner
}

// ProvideKubectlClient creates a KubectlClient for Wire dependency injection.
func ProvideKubectlClient(runner ports.CommandRunner) *KubectlClient {
	return &KubectlClient{
		commandRunner: runner,
	}
}

// ApplyManifest applies a manifest from a local path or URL.
func (k *KubectlClient) ApplyManifest(settings domain.Settings, source string) error {
	_, err := k.commandRunner.Run(domain.Invocation{
		Argv: append(k.base(settings), "apply", "-f", source),
		Env:  settings.KubeEnv(),
	})
	if err != nil {
		return fmt.Errorf("kubectl apply of %s failed: %w", source, err)
	}
	return nil
}

// CreateNamespace creates a namespace, tolerating one that already exists
// so re-running create over a half-provisioned cluster converges.
func (k *KubectlClient) CreateNamespace(settings domain.Settings, name string) error {
	return k.createToleratingExisting(settings,
		append(k.base(settings), "create", "namespace", name),
		fmt.Sprintf("create namespace %s", name))
}

func (k *KubectlClient) CreateServiceAccount(settings domain.Settings, namespace, name string) error {
	return k.createToleratingExisting(settings,
		append(k.base(settings), "--namespace", namespace, "create", "serviceaccount", name),
		fmt.Sprintf("create serviceaccount %s", name))
}

func (k *KubectlClient) CreateClusterRoleBinding(settings domain.Settings, name, clusterRole, namespace, serviceAccount string) error {
	return k.createToleratingExisting(settings,
		append(k.base(settings),
			"create", "clusterrolebinding", name,
			"--clusterrole", clusterRole,
			"--serviceaccount", namespace+":"+serviceAccount),
		fmt.Sprintf("create clusterrolebinding %s", name))
}

// PortForwardInvocation builds the long-running port-forward command. The
// caller detaches it; nothing is executed here.
func (k *KubectlClient) PortForwardInvocation(settings domain.Settings, service string, localPort, remotePort int) domain.Invocation {
	return domain.Invocation{
		Argv: append(k.base(settings),
			"--namespace", settings.KubeNamespace,
			"port-forward",
			"--address", settings.PortForwardAddress,
			"svc/"+service,
			fmt.Sprintf("%d:%d", localPort, remotePort)),
		Env: settings.KubeEnv(),
	}
}

func (k *KubectlClient) base(settings domain.Settings) []string {
	return []string{"kubectl", "--context", settings.Context()}
}

func (k *KubectlClient) createToleratingExisting(settings domain.Settings, argv []string, what string) error {
	result, err := k.commandRunner.Run(domain.Invocation{
		Argv:         argv,
		Env:          settings.KubeEnv(),
		Capture:      true,
		AllowFailure: true,
	})
	if err != nil {
		if strings.Contains(result.Stderr, "AlreadyExists") || strings.Contains(result.Stderr, "already exists") {
			return nil
		}
		return fmt.Errorf("kubectl %s failed: %w", what, err)
	}
	return nil
}
