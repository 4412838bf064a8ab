package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
)

// MockClusterProvider provides a testify mock for ports.ClusterProvider
type MockClusterProvider struct {
	mock.Mock
}

func (m *MockClusterProvider) Clusters(settings domain.Settings) ([]string, error) {
	args := m.Called(settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClusterProvider) CreateCluster(settings domain.Settings, configPath string) error {
	args := m.Called(settings, configPath)
	return args.Error(0)
}

func (m *MockClusterProvider) DeleteCluster(settings domain.Settings) error {
	args := m.Called(settings)
	return args.Error(0)
}
