//go:build wireinject
// +build wireinject

package app

import (
	"kindev/internal/adapters/cluster_provider"
	"kindev/internal/adapters/command_runner"
	"kindev/internal/adapters/container_engine"
	"kindev/internal/adapters/container_orchestrator"
	"kindev/internal/adapters/filesystem"
	"kindev/internal/adapters/keyring"
	"kindev/internal/adapters/terminal"
	"kindev/internal/core"
	"kindev/internal/core/handler"
	"kindev/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	cluster_provider.ProvideKindClient,
	wire.Bind(new(ports.ClusterProvider), new(*cluster_provider.KindClient)),
	container_engine.ProvideDockerClient,
	wire.Bind(new(ports.ContainerEngine), new(*container_engine.DockerClient)),
	container_orchestrator.ProvideKubectlClient,
	wire.Bind(new(ports.KubectlClient), new(*container_orchestrator.KubectlClient)),
	container_orchestrator.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*container_orchestrator.HelmClient)),
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.ClusterObserver), new(*container_orchestrator.Kubernetes)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideEnvFileConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.EnvFileConfigRepository)),
	core.ProvidePreflight,
	core.ProvideKindConfigGenerator,
	core.ProvideClusterManager,
	core.ProvideHTTPPortForwardProber,
	wire.Bind(new(core.PortForwardProber), new(*core.HTTPPortForwardProber)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectClusterCommandHandler() (handler.ClusterCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideClusterCommandHandler,
	)
	return handler.ClusterCommandHandler{}, nil
}

func InjectChartUpgradeCommandHandler() (handler.ChartUpgradeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideChartUpgradeCommandHandler,
	)
	return handler.ChartUpgradeCommandHandler{}, nil
}

func InjectPortForwardCommandHandler() (handler.PortForwardCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePortForwardCommandHandler,
	)
	return handler.PortForwardCommandHandler{}, nil
}

func InjectTestCommandHandler() (handler.TestCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideTestCommandHandler,
	)
	return handler.TestCommandHandler{}, nil
}

func InjectCheckCommandHandler() (handler.CheckCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCheckCommandHandler,
	)
	return handler.CheckCommandHandler{}, nil
}

func InjectChangelogCommandHandler() (handler.ChangelogCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideChangelogCommandHandler,
	)
	return handler.ChangelogCommandHandler{}, nil
}

func InjectTokenCommandHandler() (handler.TokenCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideTokenCommandHandler,
	)
	return handler.TokenCommandHandler{}, nil
}
