package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// MockHelmClient provides a testify mock for ports.HelmClient
type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) Init(settings domain.Settings, serviceAccount string) error {
	args := m.Called(settings, serviceAccount)
	return args.Error(0)
}

func (m *MockHelmClient) UpgradeInstall(settings domain.Settings, release, chart string, opts ports.UpgradeOptions) error {
	args := m.Called(settings, release, chart, opts)
	return args.Error(0)
}

func (m *MockHelmClient) Template(settings domain.Settings, release, chartPath string) ([]byte, error) {
	args := m.Called(settings, release, chartPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
