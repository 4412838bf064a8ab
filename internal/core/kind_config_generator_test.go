package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"kindev/internal/core/domain"
)

func TestKindConfigGenerator_Generate_Success(t *testing.T) {
	settings := domain.CreateDefaultSettings()
	settings.KubeVersion = "1.16.9"

	sut := ProvideKindConfigGenerator()

	config, err := sut.Generate(settings)

	require.NoError(t, err)
	content := string(config)
	assert.Contains(t, content, "kind: Cluster")
	assert.Contains(t, content, "apiVersion: kind.x-k8s.io/v1alpha4")
	assert.Contains(t, content, "disableDefaultCNI: true", "default CNI must stay off so Calico can take over")
	assert.Contains(t, content, "image: kindest/node:v1.16.9")
}

func TestKindConfigGenerator_Generate_NodeImageFollowsKubeVersion(t *testing.T) {
	settings := domain.CreateDefaultSettings()
	settings.KubeVersion = "1.21.14"

	sut := ProvideKindConfigGenerator()

	config, err := sut.Generate(settings)

	require.NoError(t, err)
	assert.Contains(t, string(config), "kindest/node:v1.21.14")
}

func TestKindConfigGenerator_Generate_ProducesValidYaml(t *testing.T) {
	sut := ProvideKindConfigGenerator()

	config, err := sut.Generate(domain.CreateDefaultSettings())

	require.NoError(t, err)
	var parsed struct {
		Kind  string `yaml:"kind"`
		Nodes []struct {
			Role  string `yaml:"role"`
			Image string `yaml:"image"`
		} `yaml:"nodes"`
	}
	require.NoError(t, yaml.Unmarshal(config, &parsed))
	assert.Equal(t, "Cluster", parsed.Kind)
	require.Len(t, parsed.Nodes, 1, "the development cluster runs a single control-plane node")
	assert.Equal(t, "control-plane", parsed.Nodes[0].Role)
}
