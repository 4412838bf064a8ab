package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
)

// MockKubectlClient provides a testify mock for ports.KubectlClient
type MockKubectlClient struct {
	mock.Mock
}

func (m *MockKubectlClient) ApplyManifest(settings domain.Settings, source string) error {
	args := m.Called(settings, source)
	return args.Error(0)
}

func (m *MockKubectlClient) CreateNamespace(settings domain.Settings, name string) error {
	args := m.Called(settings, name)
	return args.Error(0)
}

func (m *MockKubectlClient) CreateServiceAccount(settings domain.Settings, namespace, name string) error {
	args := m.Called(settings, namespace, name)
	return args.Error(0)
}

func (m *MockKubectlClient) CreateClusterRoleBinding(settings domain.Settings, name, clusterRole, namespace, serviceAccount string) error {
	args := m.Called(settings, name, clusterRole, namespace, serviceAccount)
	return args.Error(0)
}

func (m *MockKubectlClient) PortForwardInvocation(settings domain.Settings, service string, localPort, remotePort int) domain.Invocation {
	args := m.Called(settings, service, localPort, remotePort)
	return args.Get(0).(domain.Invocation)
}
