package container_orchestrator

import (
	"fmt"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm 2 CLI. Cluster-side
// calls pin --kube-context so a stray current-context can never be the
// target; Template renders locally and needs no cluster at all.
type HelmClient struct {
	commandRunner ports.CommandRunner
}

// ProvideHelmClient creates a HelmClient for Wire dependency injection.
func ProvideHelmClient(runner ports.CommandRunner) *HelmClient {
	return &HelmClient{
		commandRunner: runner,
	}
}

// Init installs tiller bound to the given service account. The caller waits
// for the tiller deployment separately; helm init only submits it.
func (h *HelmClient) Init(settings domain.Settings, serviceAccount string) error {
	_, err := h.commandRunner.Run(domain.Invocation{
		Argv: []string{
			"helm", "--kube-context", settings.Context(),
			"init", "--service-account", serviceAccount,
		},
		Env: settings.KubeEnv(),
	})
	if err != nil {
		return fmt.Errorf("helm init failed: %w", err)
	}
	return nil
}

// UpgradeInstall installs or upgrades a release. On failure the chart
// upgrade diagnostic routine runs before the abort.
func (h *HelmClient) UpgradeInstall(settings domain.Settings, release, chart string, opts ports.UpgradeOptions) error {
	cmdArgs := []string{
		"helm", "--kube-context", settings.Context(),
		"upgrade", "--install", release, chart,
		"--namespace", settings.KubeNamespace,
	}
	if opts.Version != "" {
		cmdArgs = append(cmdArgs, "--version", opts.Version)
	}
	for _, valuesFile := range opts.ValuesFiles {
		cmdArgs = append(cmdArgs, "--values", valuesFile)
	}
	for _, set := range opts.Set {
		cmdArgs = append(cmdArgs, "--set", set)
	}

	routine := domain.ChartUpgradeRoutine(settings, release)
	_, err := h.commandRunner.Run(domain.Invocation{
		Argv:    cmdArgs,
		Env:     settings.KubeEnv(),
		OnError: &routine,
	})
	if err != nil {
		return fmt.Errorf("helm upgrade failed: %w", err)
	}
	return nil
}

// Template renders a helm chart locally and returns the manifests as YAML.
func (h *HelmClient) Template(settings domain.Settings, release, chartPath string) ([]byte, error) {
	result, err := h.commandRunner.Run(domain.Invocation{
		Argv: []string{
			"helm", "template", chartPath,
			"--name", release,
			"--namespace", settings.KubeNamespace,
		},
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("helm template failed: %w", err)
	}
	return []byte(result.Stdout), nil
}
