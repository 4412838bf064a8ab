package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

var envFilePath = ".env"

// Keys where a value in the environment file beats an inherited environment
// variable. An inherited KUBECONFIG pointing at a real cluster, or a token
// exported hours ago in some shell, must never silently drive this tool.
var sensitiveKeys = map[string]bool{
	domain.KeyGithubAccessToken: true,
	domain.KeyKubeconfig:        true,
}

const envFileTemplate = `# kindev configuration.
# Loaded by every kindev command from the repository root. Values here win
# over inherited environment variables for GITHUB_ACCESS_TOKEN and
# KUBECONFIG; everything else can be overridden per invocation.

# Token used by the changelog tooling. Prefer 'kindev token set', which
# stores it in the OS keyring instead of this file.
GITHUB_ACCESS_TOKEN=unset-see-token-command

# Dedicated kubeconfig so kindev can never touch another cluster.
KUBECONFIG=.kube/kindev-config

# Kube context to target. Empty means the context kind generates.
KUBE_CONTEXT=

# Namespace the chart is installed into.
KUBE_NAMESPACE=kindev

# Kubernetes version of the local cluster's node image.
KUBE_VERSION=1.16.9

# Comma-separated kubernetes versions for 'kindev check templates'.
VALIDATE_KUBE_VERSIONS=1.16.0

# Local side of 'kindev port-forward'.
PORT_FORWARD_ADDRESS=127.0.0.1
PORT_FORWARD_PORT=8080
`

type ConfigRepository interface {
	// LoadSettings resolves the tool settings from defaults, the process
	// environment, and the environment file, creating the file from its
	// template on first use.
	LoadSettings() (domain.Settings, error)
	// EnvFilePath returns the path of the environment file.
	EnvFilePath() string
}

// EnvFileConfigRepository loads settings from a dotenv file next to the
// chart repository, layered with the process environment.
type EnvFileConfigRepository struct {
	fileSystem ports.FileSystem
	keyring    ports.Keyring
	warnOut    io.Writer
	settings   *domain.Settings
}

func ProvideEnvFileConfigRepository(
	fileSystem ports.FileSystem,
	keyring ports.Keyring,
) *EnvFileConfigRepository {
	return &EnvFileConfigRepository{
		fileSystem: fileSystem,
		keyring:    keyring,
		warnOut:    os.Stderr,
	}
}

func (r *EnvFileConfigRepository) EnvFilePath() string {
	return envFilePath
}

func (r *EnvFileConfigRepository) LoadSettings() (domain.Settings, error) {
	if r.settings != nil {
		return *r.settings, nil
	}

	if err := r.ensureEnvFile(); err != nil {
		return domain.Settings{}, err
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(envFilePath), dotenv.Parser()); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to parse %s: %v", envFilePath, err)
	}

	envK := koanf.New(".")
	if err := envK.Load(env.Provider("", ".", recognizedKey), nil); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to read environment variables: %v", err)
	}

	settings := domain.CreateDefaultSettings()
	settings.GithubAccessToken = r.resolve(domain.KeyGithubAccessToken, envK, fileK, settings.GithubAccessToken)
	settings.Kubeconfig = r.resolve(domain.KeyKubeconfig, envK, fileK, settings.Kubeconfig)
	settings.KubeContext = r.resolve(domain.KeyKubeContext, envK, fileK, settings.KubeContext)
	settings.KubeNamespace = r.resolve(domain.KeyKubeNamespace, envK, fileK, settings.KubeNamespace)
	settings.KubeVersion = r.resolve(domain.KeyKubeVersion, envK, fileK, settings.KubeVersion)
	settings.ValidateKubeVersions = r.resolve(domain.KeyValidateKubeVersions, envK, fileK, settings.ValidateKubeVersions)
	settings.PortForwardAddress = r.resolve(domain.KeyPortForwardAddress, envK, fileK, settings.PortForwardAddress)

	portValue := r.resolve(domain.KeyPortForwardPort, envK, fileK, strconv.Itoa(settings.PortForwardPort))
	port, err := strconv.Atoi(portValue)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%s must be a number, got '%s'", domain.KeyPortForwardPort, portValue)
	}
	settings.PortForwardPort = port

	kubeconfig, err := expandHomePath(settings.Kubeconfig)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.Kubeconfig = kubeconfig

	// The keyring is the fallback for a token configured through
	// 'kindev token set'. Keyring errors are expected on headless
	// machines and never fail the load.
	if !settings.HasGithubToken() {
		if has, err := r.keyring.HasKey(domain.KeyGithubAccessToken); err == nil && has {
			if token, err := r.keyring.GetKey(domain.KeyGithubAccessToken); err == nil && token != "" {
				settings.GithubAccessToken = token
			}
		}
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("invalid configuration: %v", err)
	}

	r.settings = &settings
	return settings, nil
}

// resolve merges one key across the three layers. Empty values count as
// unset; the GITHUB_ACCESS_TOKEN template sentinel counts as unset too.
func (r *EnvFileConfigRepository) resolve(key string, envK, fileK *koanf.Koanf, def string) string {
	envValue := strings.TrimSpace(envK.String(key))
	fileValue := strings.TrimSpace(fileK.String(key))
	if key == domain.KeyGithubAccessToken && fileValue == domain.GithubTokenPlaceholder {
		fileValue = ""
	}

	if sensitiveKeys[key] && fileValue != "" {
		if envValue != "" && envValue != fileValue {
			fmt.Fprintf(r.warnOut, "WARN: %s from the environment is overridden by %s\n", key, envFilePath)
		}
		return fileValue
	}
	if envValue != "" {
		return envValue
	}
	if fileValue != "" {
		return fileValue
	}
	return def
}

func (r *EnvFileConfigRepository) ensureEnvFile() error {
	exists, err := r.fileSystem.FileExists(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to check for %s: %v", envFilePath, err)
	}
	if exists {
		return nil
	}

	if err := r.fileSystem.WriteFile(envFilePath, []byte(envFileTemplate), ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to create %s: %v", envFilePath, err)
	}
	fmt.Fprintf(r.warnOut, "created %s with default configuration\n", envFilePath)
	return nil
}

// recognizedKey keeps the environment provider down to the keys the tool
// knows. Everything else in the environment is ignored.
func recognizedKey(name string) string {
	switch name {
	case domain.KeyGithubAccessToken,
		domain.KeyKubeconfig,
		domain.KeyKubeContext,
		domain.KeyKubeNamespace,
		domain.KeyKubeVersion,
		domain.KeyValidateKubeVersions,
		domain.KeyPortForwardAddress,
		domain.KeyPortForwardPort:
		return name
	}
	return ""
}

func expandHomePath(path string) (string, error) {
	if len(path) == 0 || path[:1] != "~" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var _ ConfigRepository = (*EnvFileConfigRepository)(nil)
