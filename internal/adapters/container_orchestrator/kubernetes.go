package container_orchestrator

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var _ ports.ClusterObserver = (*Kubernetes)(nil)

const pollInterval = 2 * time.Second

// Kubernetes implements ports.ClusterObserver with client-go. The client is
// built per call because the kubeconfig does not exist until the first
// cluster create has finished.
type Kubernetes struct {
	newClientSet func(settings domain.Settings) (kubernetes.Interface, error)
}

func ProvideKubernetes() *Kubernetes {
	return &Kubernetes{
		newClientSet: newClientSet,
	}
}

func newClientSet(settings domain.Settings) (kubernetes.Interface, error) {
	loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: settings.Kubeconfig}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: settings.Context()}
	kubeConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes config: %v", err)
	}

	clientSet, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %v", err)
	}
	return clientSet, nil
}

// WaitNodesReady polls until every node reports Ready. API errors while the
// control plane is still coming up count as not ready, not as failures.
func (k *Kubernetes) WaitNodesReady(ctx context.Context, settings domain.Settings, timeout time.Duration) error {
	clientSet, err := k.newClientSet(settings)
	if err != nil {
		return err
	}

	err = wait.PollUntilContextTimeout(ctx, pollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		nodes, err := clientSet.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil || len(nodes.Items) == 0 {
			return false, nil
		}
		for _, node := range nodes.Items {
			if !nodeReady(node) {
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("nodes did not become ready within %s: %v", timeout, err)
	}
	return nil
}

// WaitDeploymentAvailable polls until the deployment has at least one
// available replica.
func (k *Kubernetes) WaitDeploymentAvailable(ctx context.Context, settings domain.Settings, namespace, name string, timeout time.Duration) error {
	clientSet, err := k.newClientSet(settings)
	if err != nil {
		return err
	}

	err = wait.PollUntilContextTimeout(ctx, pollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		deployment, err := clientSet.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return false, nil
		}
		return deploymentAvailable(deployment), nil
	})
	if err != nil {
		return fmt.Errorf("deployment %s/%s did not become available within %s: %v", namespace, name, timeout, err)
	}
	return nil
}

// CurrentContext returns the current context recorded in the settings'
// kubeconfig, typically the context kind just wrote.
func (k *Kubernetes) CurrentContext(settings domain.Settings) (string, error) {
	config, err := clientcmd.LoadFromFile(settings.Kubeconfig)
	if err != nil {
		return "", fmt.Errorf("failed to load kubeconfig %s: %v", settings.Kubeconfig, err)
	}
	return config.CurrentContext, nil
}

func nodeReady(node corev1.Node) bool {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady {
			return condition.Status == corev1.ConditionTrue
		}
	}
	return false
}

func deploymentAvailable(deployment *appsv1.Deployment) bool {
	return deployment.Status.AvailableReplicas > 0
}
