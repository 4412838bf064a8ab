package core

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
	"kindev/internal/testutil"
)

func newTestConfigRepository(t *testing.T) (*EnvFileConfigRepository, *testutil.TestFileSystem, *testutil.MockKeyring, *bytes.Buffer) {
	t.Helper()
	clearToolEnvironment(t)

	fileSystem := testutil.NewTestFileSystem(t)
	t.Chdir(fileSystem.BaseDir())

	keyring := &testutil.MockKeyring{}
	warnings := &bytes.Buffer{}
	repository := ProvideEnvFileConfigRepository(fileSystem, keyring)
	repository.warnOut = warnings
	return repository, fileSystem, keyring, warnings
}

// clearToolEnvironment removes every recognized key from the process
// environment so values inherited from the developer's shell cannot leak
// into assertions.
func clearToolEnvironment(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		domain.KeyGithubAccessToken,
		domain.KeyKubeconfig,
		domain.KeyKubeContext,
		domain.KeyKubeNamespace,
		domain.KeyKubeVersion,
		domain.KeyValidateKubeVersions,
		domain.KeyPortForwardAddress,
		domain.KeyPortForwardPort,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, fileSystem *testutil.TestFileSystem, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, fileSystem.WriteFile(".env", []byte(content), ports.ReadWrite))
}

func expectNoKeyringToken(keyring *testutil.MockKeyring) {
	keyring.On("HasKey", domain.KeyGithubAccessToken).Return(false, nil).Maybe()
}

func TestLoadSettingsCreatesEnvFileWithDefaultsOnFirstRun(t *testing.T) {
	repository, fileSystem, keyring, warnings := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultSettings(), settings)

	exists, err := fileSystem.FileExists(".env")
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := fileSystem.ReadFile(".env")
	require.NoError(t, err)
	assert.Contains(t, string(content), domain.KeyGithubAccessToken+"="+domain.GithubTokenPlaceholder)
	assert.Contains(t, string(content), domain.KeyKubeconfig+"=.kube/kindev-config")
	assert.Contains(t, warnings.String(), "created .env with default configuration")
}

func TestLoadSettingsReadsValuesFromEnvFile(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem,
		"KUBE_VERSION=1.17.2",
		"KUBE_NAMESPACE=staging",
		"VALIDATE_KUBE_VERSIONS=1.16.0,1.17.0",
		"PORT_FORWARD_PORT=9090",
	)

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "1.17.2", settings.KubeVersion)
	assert.Equal(t, "staging", settings.KubeNamespace)
	assert.Equal(t, []string{"1.16.0", "1.17.0"}, settings.ValidateVersionList())
	assert.Equal(t, 9090, settings.PortForwardPort)
}

func TestLoadSettingsEnvironmentOverridesFileForRegularKeys(t *testing.T) {
	repository, fileSystem, keyring, warnings := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem, "KUBE_NAMESPACE=from-file")
	t.Setenv(domain.KeyKubeNamespace, "from-env")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "from-env", settings.KubeNamespace)
	assert.Empty(t, warnings.String())
}

func TestLoadSettingsFileOverridesEnvironmentForGithubToken(t *testing.T) {
	repository, fileSystem, _, warnings := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "GITHUB_ACCESS_TOKEN=token-from-file")
	t.Setenv(domain.KeyGithubAccessToken, "token-from-env")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "token-from-file", settings.GithubAccessToken)
	assert.Equal(t, 1, strings.Count(warnings.String(), "WARN:"))
	assert.Contains(t, warnings.String(), domain.KeyGithubAccessToken)
}

func TestLoadSettingsFileOverridesEnvironmentForKubeconfig(t *testing.T) {
	repository, fileSystem, keyring, warnings := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem, "KUBECONFIG=.kube/dedicated-config")
	t.Setenv(domain.KeyKubeconfig, "/home/someone/.kube/config")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, ".kube/dedicated-config", settings.Kubeconfig)
	assert.Equal(t, 1, strings.Count(warnings.String(), "WARN:"))
	assert.Contains(t, warnings.String(), domain.KeyKubeconfig)
}

func TestLoadSettingsDoesNotWarnWhenFileAndEnvironmentAgree(t *testing.T) {
	repository, fileSystem, _, warnings := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "GITHUB_ACCESS_TOKEN=same-token")
	t.Setenv(domain.KeyGithubAccessToken, "same-token")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "same-token", settings.GithubAccessToken)
	assert.Empty(t, warnings.String())
}

func TestLoadSettingsTreatsTokenPlaceholderInFileAsUnset(t *testing.T) {
	repository, fileSystem, _, warnings := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "GITHUB_ACCESS_TOKEN="+domain.GithubTokenPlaceholder)
	t.Setenv(domain.KeyGithubAccessToken, "token-from-env")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "token-from-env", settings.GithubAccessToken)
	assert.Empty(t, warnings.String())
}

func TestLoadSettingsFallsBackToKeyringForGithubToken(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "KUBE_NAMESPACE=kindev")
	keyring.On("HasKey", domain.KeyGithubAccessToken).Return(true, nil)
	keyring.On("GetKey", domain.KeyGithubAccessToken).Return("token-from-keyring", nil)

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "token-from-keyring", settings.GithubAccessToken)
	keyring.AssertExpectations(t)
}

func TestLoadSettingsIgnoresKeyringErrors(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "KUBE_NAMESPACE=kindev")
	keyring.On("HasKey", domain.KeyGithubAccessToken).Return(false, assert.AnError)

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, domain.GithubTokenPlaceholder, settings.GithubAccessToken)
}

func TestLoadSettingsRejectsNonNumericPort(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem, "PORT_FORWARD_PORT=not-a-port")

	_, err := repository.LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.KeyPortForwardPort)
	assert.Contains(t, err.Error(), "not-a-port")
}

func TestLoadSettingsRejectsOutOfRangePort(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem, "PORT_FORWARD_PORT=70000")

	_, err := repository.LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadSettingsExpandsHomeInKubeconfig(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem, "KUBECONFIG=~/.kube/kindev-config")

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home+"/.kube/kindev-config", settings.Kubeconfig)
}

func TestLoadSettingsCachesResolvedSettings(t *testing.T) {
	repository, fileSystem, _, warnings := newTestConfigRepository(t)
	writeEnvFile(t, fileSystem, "GITHUB_ACCESS_TOKEN=token-from-file")
	t.Setenv(domain.KeyGithubAccessToken, "token-from-env")

	first, err := repository.LoadSettings()
	require.NoError(t, err)
	second, err := repository.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(warnings.String(), "WARN:"), "warning must print once, not once per load")
}

func TestLoadSettingsIgnoresUnrecognizedFileEntries(t *testing.T) {
	repository, fileSystem, keyring, _ := newTestConfigRepository(t)
	expectNoKeyringToken(keyring)
	writeEnvFile(t, fileSystem,
		"SOME_OTHER_TOOL_SETTING=whatever",
		"KUBE_NAMESPACE=kindev",
	)

	settings, err := repository.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "kindev", settings.KubeNamespace)
}

func TestEnvFileConfigRepositoryImplementsConfigRepository(t *testing.T) {
	var _ ConfigRepository = &EnvFileConfigRepository{}
}
