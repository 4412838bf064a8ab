package core

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"kindev/internal/core/domain"
)

const (
	kindConfigAPIVersion = "kind.x-k8s.io/v1alpha4"
	kindNodeImagePrefix  = "kindest/node:v"
)

type kindClusterConfig struct {
	Kind       string         `yaml:"kind"`
	APIVersion string         `yaml:"apiVersion"`
	Networking kindNetworking `yaml:"networking"`
	Nodes      []kindNode     `yaml:"nodes"`
}

type kindNetworking struct {
	// The default CNI stays off; Calico is installed right after the
	// cluster comes up so network policies actually enforce.
	DisableDefaultCNI bool `yaml:"disableDefaultCNI"`
}

type kindNode struct {
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
}

// KindConfigGenerator renders the cluster config file passed to
// 'kind create cluster'. Pure business logic with no I/O operations.
type KindConfigGenerator struct{}

func ProvideKindConfigGenerator() *KindConfigGenerator {
	return &KindConfigGenerator{}
}

// Generate returns the kind cluster config for a single control-plane
// cluster running the node image matching the configured version.
func (g *KindConfigGenerator) Generate(settings domain.Settings) ([]byte, error) {
	config := kindClusterConfig{
		Kind:       "Cluster",
		APIVersion: kindConfigAPIVersion,
		Networking: kindNetworking{DisableDefaultCNI: true},
		Nodes: []kindNode{
			{Role: "control-plane", Image: kindNodeImagePrefix + settings.KubeVersion},
		},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode kind cluster config: %v", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode kind cluster config: %v", err)
	}
	return []byte(buf.String()), nil
}
