package handler

import (
	"fmt"
	"path/filepath"

	"kindev/internal/cli/output"
	"kindev/internal/core"
	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

type CheckCommandHandler struct {
	configRepository core.ConfigRepository
	preflight        core.Preflight
	helmClient       ports.HelmClient
	fileSystem       ports.FileSystem
	commandRunner    ports.CommandRunner
}

func ProvideCheckCommandHandler(
	configRepository core.ConfigRepository,
	preflight core.Preflight,
	helmClient ports.HelmClient,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
) CheckCommandHandler {
	return CheckCommandHandler{
		configRepository: configRepository,
		preflight:        preflight,
		helmClient:       helmClient,
		fileSystem:       fileSystem,
		commandRunner:    commandRunner,
	}
}

// HandleTemplates renders the chart and pushes the result through yamllint
// and kubeval, the latter once per version in VALIDATE_KUBE_VERSIONS.
func (h *CheckCommandHandler) HandleTemplates(chartPath string) error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}
	if err := h.preflight.EnsureBinaries("helm", "yamllint", "kubeval"); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Rendering chart %s", chartPath))
	rendered, err := h.helmClient.Template(settings, releaseNameFor(chartPath), chartPath)
	if err != nil {
		return err
	}

	checkDir, err := h.fileSystem.TempDir("kindev-check")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %v", err)
	}
	defer h.fileSystem.RemoveAll(checkDir)

	manifestPath := filepath.Join(checkDir, "rendered.yaml")
	if err := h.fileSystem.WriteFile(manifestPath, rendered, ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to write rendered manifests: %v", err)
	}

	output.PrintStep("Linting rendered manifests")
	if _, err := h.commandRunner.Run(domain.Invocation{Argv: []string{"yamllint", manifestPath}}); err != nil {
		return err
	}

	versions := settings.ValidateVersionList()
	for _, version := range versions {
		output.PrintStep(fmt.Sprintf("Validating against Kubernetes %s", version))
		inv := domain.Invocation{
			Argv: []string{
				"kubeval",
				"--strict",
				"--ignore-missing-schemas",
				"--kubernetes-version", version,
				manifestPath,
			},
		}
		if _, err := h.commandRunner.Run(inv); err != nil {
			return err
		}
	}

	output.PrintSuccess(fmt.Sprintf("Templates validated against %d Kubernetes %s",
		len(versions), output.Plural(len(versions), "version", "versions")))
	return nil
}

// HandlePythonCode runs black and flake8 over the repository. With apply set
// black rewrites files instead of only reporting drift.
func (h *CheckCommandHandler) HandlePythonCode(apply bool) error {
	if err := h.preflight.EnsureBinaries("black", "flake8"); err != nil {
		return err
	}

	blackArgs := []string{"black", "--check", "."}
	stepText := "Checking formatting with black"
	if apply {
		blackArgs = []string{"black", "."}
		stepText = "Formatting with black"
	}
	output.PrintStep(stepText)
	if _, err := h.commandRunner.Run(domain.Invocation{Argv: blackArgs}); err != nil {
		return err
	}

	output.PrintStep("Linting with flake8")
	if _, err := h.commandRunner.Run(domain.Invocation{Argv: []string{"flake8"}}); err != nil {
		return err
	}

	if apply {
		output.PrintSuccess("Python code formatted and linted")
	} else {
		output.PrintSuccess("Python code checks passed")
	}
	return nil
}
