package domain

// ClusterName is the fixed name of the local development cluster. kind
// derives the kube context ("kind-" prefix) and the control-plane container
// name ("-control-plane" suffix) from it.
const ClusterName = "kindev"

// ControlPlaneContainer returns the name of the Docker container kind runs
// the control plane in.
func ControlPlaneContainer() string {
	return ClusterName + "-control-plane"
}

// ClusterState is the observed lifecycle state of the development cluster.
type ClusterState int

const (
	// ClusterAbsent: kind knows no cluster of our name.
	ClusterAbsent ClusterState = iota
	// ClusterStopped: the cluster exists but its control-plane container is
	// not running, typically after a host reboot.
	ClusterStopped
	// ClusterRunning: the control-plane container is up.
	ClusterRunning
)

func (s ClusterState) String() string {
	switch s {
	case ClusterAbsent:
		return "absent"
	case ClusterStopped:
		return "stopped"
	case ClusterRunning:
		return "running"
	default:
		return "unknown"
	}
}
