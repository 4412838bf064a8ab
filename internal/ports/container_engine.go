package ports

// ContainerEngine exposes the narrow Docker surface the cluster lifecycle
// needs: inspecting and starting the control-plane container.
type ContainerEngine interface {
	// ContainerRunning reports whether the named container exists and is
	// currently running. An absent container is simply not running.
	ContainerRunning(name string) (bool, error)
	StartContainer(name string) error
}
