package ports

import "kindev/internal/core/domain"

// KubectlClient wraps the kubectl operations the tool drives against its
// own cluster. Every call pins the context and kubeconfig from settings so
// no command can accidentally target another cluster.
type KubectlClient interface {
	// ApplyManifest applies a manifest from a local path or URL.
	ApplyManifest(settings domain.Settings, source string) error
	CreateNamespace(settings domain.Settings, name string) error
	CreateServiceAccount(settings domain.Settings, namespace, name string) error
	CreateClusterRoleBinding(settings domain.Settings, name, clusterRole, namespace, serviceAccount string) error
	// PortForwardInvocation builds the long-running port-forward command
	// without executing it; the caller decides how to supervise it.
	PortForwardInvocation(settings domain.Settings, service string, localPort, remotePort int) domain.Invocation
}
