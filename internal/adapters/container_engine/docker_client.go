package container_engine

import (
	"errors"
	"fmt"
	"strings"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var _ ports.ContainerEngine = (*DockerClient)(nil)

// DockerClient implements ports.ContainerEngine using the docker CLI.
type DockerClient struct {
	commandRunner ports.CommandRunner
}

// ProvideDockerClient creates a DockerClient for Wire dependency injection.
func ProvideDockerClient(runner ports.CommandRunner) *DockerClient {
	return &DockerClient{
		commandRunner: runner,
	}
}

// ContainerRunning reports whether the named container exists and is
// running. docker inspect exits non-zero for unknown containers; that
// counts as not running rather than an error.
func (d *DockerClient) ContainerRunning(name string) (bool, error) {
	result, err := d.commandRunner.Run(domain.Invocation{
		Argv:         []string{"docker", "inspect", "-f", "{{.State.Running}}", name},
		Capture:      true,
		AllowFailure: true,
	})
	if err != nil {
		var execErr *domain.ExecutionError
		if errors.As(err, &execErr) {
			return false, nil
		}
		return false, fmt.Errorf("docker inspect failed: %w", err)
	}
	return strings.TrimSpace(result.Stdout) == "true", nil
}

func (d *DockerClient) StartContainer(name string) error {
	_, err := d.commandRunner.Run(domain.Invocation{
		Argv: []string{"docker", "start", name},
	})
	if err != nil {
		return fmt.Errorf("docker start %s failed: %w", name, err)
	}
	return nil
}
