package ports

import "kindev/internal/core/domain"

// HelmClient defines the interface for interacting with Helm.
type HelmClient interface {
	// Init installs tiller into the cluster bound to the given service
	// account and waits for the local side of the setup to finish.
	Init(settings domain.Settings, serviceAccount string) error
	// UpgradeInstall installs or upgrades a release from a chart reference,
	// creating the release when it does not exist yet.
	UpgradeInstall(settings domain.Settings, release, chart string, opts UpgradeOptions) error
	// Template renders a chart locally and returns the manifests as YAML.
	Template(settings domain.Settings, release, chartPath string) ([]byte, error)
}

// UpgradeOptions carries the optional arguments of UpgradeInstall.
type UpgradeOptions struct {
	Version     string
	ValuesFiles []string
	Set         []string
}
