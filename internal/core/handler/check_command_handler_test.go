package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kindev/internal/core"
	"kindev/internal/core/domain"
	"kindev/internal/testutil"
)

type checkMocks struct {
	configRepository *testutil.MockConfigRepository
	commandRunner    *testutil.MockCommandRunner
	helmClient       *testutil.MockHelmClient
	fileSystem       *testutil.MockFileSystem
}

func createCheckCommandHandler() (CheckCommandHandler, *checkMocks) {
	mocks := &checkMocks{
		configRepository: new(testutil.MockConfigRepository),
		commandRunner:    new(testutil.MockCommandRunner),
		helmClient:       new(testutil.MockHelmClient),
		fileSystem:       new(testutil.MockFileSystem),
	}
	sut := ProvideCheckCommandHandler(
		mocks.configRepository,
		core.ProvidePreflight(mocks.commandRunner),
		mocks.helmClient,
		mocks.fileSystem,
		mocks.commandRunner,
	)
	return sut, mocks
}

func (m *checkMocks) expectBinaries(names ...string) {
	for _, name := range names {
		m.commandRunner.On("LookPath", name).Return("/usr/local/bin/"+name, nil)
	}
}

func capturedInvocations(commandRunner *testutil.MockCommandRunner) []domain.Invocation {
	var invocations []domain.Invocation
	for _, call := range commandRunner.Calls {
		if call.Method == "Run" {
			invocations = append(invocations, call.Arguments.Get(0).(domain.Invocation))
		}
	}
	return invocations
}

func TestCheckCommandHandler_HandleTemplatesValidatesEachVersion(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	settings := domain.CreateDefaultSettings()
	settings.ValidateKubeVersions = "1.15.0,1.16.0"
	rendered := []byte("kind: ConfigMap\n")
	mocks.configRepository.On("LoadSettings").Return(settings, nil)
	mocks.expectBinaries("helm", "yamllint", "kubeval")
	mocks.helmClient.On("Template", settings, "jupyterhub", "charts/jupyterhub").Return(rendered, nil)
	mocks.fileSystem.On("TempDir", "kindev-check").Return("/tmp/kindev-check-test", nil)
	mocks.fileSystem.On("WriteFile", "/tmp/kindev-check-test/rendered.yaml", rendered, mock.Anything).Return(nil)
	mocks.fileSystem.On("RemoveAll", "/tmp/kindev-check-test").Return(nil)
	mocks.commandRunner.On("Run", mock.Anything).Return(domain.ExecutionResult{}, nil)

	result := sut.HandleTemplates("charts/jupyterhub")

	require.Nil(t, result)
	mocks.helmClient.AssertExpectations(t)
	mocks.fileSystem.AssertExpectations(t)
	invocations := capturedInvocations(mocks.commandRunner)
	require.Len(t, invocations, 3)
	assert.Equal(t, []string{"yamllint", "/tmp/kindev-check-test/rendered.yaml"}, invocations[0].Argv)
	assert.Contains(t, invocations[1].Argv, "kubeval")
	assert.Contains(t, invocations[1].Argv, "1.15.0")
	assert.Contains(t, invocations[2].Argv, "1.16.0")
}

func TestCheckCommandHandler_HandleTemplatesStopsAfterLintFailure(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	settings := domain.CreateDefaultSettings()
	expectedErr := errors.New("lint failed")
	mocks.configRepository.On("LoadSettings").Return(settings, nil)
	mocks.expectBinaries("helm", "yamllint", "kubeval")
	mocks.helmClient.On("Template", settings, mock.Anything, mock.Anything).Return([]byte("kind: ConfigMap\n"), nil)
	mocks.fileSystem.On("TempDir", mock.Anything).Return("/tmp/kindev-check-test", nil)
	mocks.fileSystem.On("WriteFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.fileSystem.On("RemoveAll", "/tmp/kindev-check-test").Return(nil)
	mocks.commandRunner.On("Run", mock.Anything).Return(nil, expectedErr)

	result := sut.HandleTemplates("charts/jupyterhub")

	assert.Equal(t, expectedErr, result)
	assert.Len(t, capturedInvocations(mocks.commandRunner), 1, "kubeval should not run after yamllint fails")
	mocks.fileSystem.AssertCalled(t, "RemoveAll", "/tmp/kindev-check-test")
}

func TestCheckCommandHandler_HandleTemplatesPropagatesRenderError(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	settings := domain.CreateDefaultSettings()
	expectedErr := errors.New("template failed")
	mocks.configRepository.On("LoadSettings").Return(settings, nil)
	mocks.expectBinaries("helm", "yamllint", "kubeval")
	mocks.helmClient.On("Template", settings, mock.Anything, mock.Anything).Return(nil, expectedErr)

	result := sut.HandleTemplates("charts/jupyterhub")

	assert.Equal(t, expectedErr, result)
	mocks.fileSystem.AssertNotCalled(t, "TempDir", mock.Anything)
}

func TestCheckCommandHandler_HandlePythonCodeChecksByDefault(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	mocks.expectBinaries("black", "flake8")
	mocks.commandRunner.On("Run", mock.Anything).Return(domain.ExecutionResult{}, nil)

	result := sut.HandlePythonCode(false)

	require.Nil(t, result)
	invocations := capturedInvocations(mocks.commandRunner)
	require.Len(t, invocations, 2)
	assert.Equal(t, []string{"black", "--check", "."}, invocations[0].Argv)
	assert.Equal(t, []string{"flake8"}, invocations[1].Argv)
}

func TestCheckCommandHandler_HandlePythonCodeAppliesFormatting(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	mocks.expectBinaries("black", "flake8")
	mocks.commandRunner.On("Run", mock.Anything).Return(domain.ExecutionResult{}, nil)

	result := sut.HandlePythonCode(true)

	require.Nil(t, result)
	invocations := capturedInvocations(mocks.commandRunner)
	require.Len(t, invocations, 2)
	assert.Equal(t, []string{"black", "."}, invocations[0].Argv)
}

func TestCheckCommandHandler_HandlePythonCodeStopsWhenBlackFails(t *testing.T) {
	sut, mocks := createCheckCommandHandler()
	expectedErr := errors.New("would reformat dev.py")
	mocks.expectBinaries("black", "flake8")
	mocks.commandRunner.On("Run", mock.Anything).Return(nil, expectedErr)

	result := sut.HandlePythonCode(false)

	assert.Equal(t, expectedErr, result)
	assert.Len(t, capturedInvocations(mocks.commandRunner), 1)
}
