package ports

import (
	"context"
	"time"

	"kindev/internal/core/domain"
)

// ClusterObserver reads cluster state through the Kubernetes API. All
// mutations go through the wrapped CLIs; the observer only watches and
// waits.
type ClusterObserver interface {
	// WaitNodesReady blocks until every node reports Ready or the timeout
	// elapses.
	WaitNodesReady(ctx context.Context, settings domain.Settings, timeout time.Duration) error
	// WaitDeploymentAvailable blocks until the deployment has at least one
	// available replica or the timeout elapses.
	WaitDeploymentAvailable(ctx context.Context, settings domain.Settings, namespace, name string, timeout time.Duration) error
	// CurrentContext returns the current context recorded in the settings'
	// kubeconfig.
	CurrentContext(settings domain.Settings) (string, error)
}
