package ports

import "kindev/internal/core/domain"

// ClusterProvider manages local Kubernetes-in-Docker clusters.
type ClusterProvider interface {
	// Clusters returns the names of all existing clusters.
	Clusters(settings domain.Settings) ([]string, error)
	// CreateCluster brings up the development cluster from the given config
	// file and writes its credentials into the settings' kubeconfig.
	CreateCluster(settings domain.Settings, configPath string) error
	// DeleteCluster tears the development cluster down. Deleting an absent
	// cluster is not an error.
	DeleteCluster(settings domain.Settings) error
}
