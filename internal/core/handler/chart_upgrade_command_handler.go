package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"kindev/internal/cli/output"
	"kindev/internal/core"
	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

type ChartUpgradeCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
	fileSystem       ports.FileSystem
	commandRunner    ports.CommandRunner
	helmClient       ports.HelmClient
}

func ProvideChartUpgradeCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
	helmClient ports.HelmClient,
) ChartUpgradeCommandHandler {
	return ChartUpgradeCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
		fileSystem:       fileSystem,
		commandRunner:    commandRunner,
		helmClient:       helmClient,
	}
}

func (h *ChartUpgradeCommandHandler) Handle(chartPath, release, version string, valuesFiles, setValues []string) error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}

	if release == "" {
		release = releaseNameFor(chartPath)
	}

	chartpressDir, err := h.findChartpressDir(chartPath)
	if err != nil {
		return err
	}

	binaries := []string{"helm", "kubectl"}
	if chartpressDir != "" {
		binaries = append(binaries, "chartpress", "docker")
	}
	if err := h.preflight.EnsureBinaries(binaries...); err != nil {
		return err
	}

	if chartpressDir != "" {
		output.PrintStep("Building images with chartpress")
		inv := domain.Invocation{
			Argv: []string{"chartpress"},
			Dir:  chartpressDir,
			Env:  settings.KubeEnv(),
		}
		if _, err := h.commandRunner.Run(inv); err != nil {
			return err
		}
	}

	output.PrintStep(fmt.Sprintf("Upgrading release '%s' from %s", release, chartPath))
	opts := ports.UpgradeOptions{
		Version:     version,
		ValuesFiles: valuesFiles,
		Set:         setValues,
	}
	if err := h.helmClient.UpgradeInstall(settings, release, chartPath, opts); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Release '%s' is up to date", release))
	return nil
}

// findChartpressDir looks for a chartpress.yaml next to the chart directory
// or inside it. A hit means the chart's images are built from this checkout
// and chartpress must run before the upgrade so the image tags exist.
func (h *ChartUpgradeCommandHandler) findChartpressDir(chartPath string) (string, error) {
	for _, dir := range []string{filepath.Dir(chartPath), chartPath} {
		exists, err := h.fileSystem.FileExists(filepath.Join(dir, "chartpress.yaml"))
		if err != nil {
			return "", err
		}
		if exists {
			return dir, nil
		}
	}
	return "", nil
}

func releaseNameFor(chartPath string) string {
	base := filepath.Base(filepath.Clean(chartPath))
	if base == "." || base == string(filepath.Separator) || strings.TrimSpace(base) == "" {
		return domain.ClusterName
	}
	return base
}
