package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
)

// MockClusterObserver provides a testify mock for ports.ClusterObserver
type MockClusterObserver struct {
	mock.Mock
}

func (m *MockClusterObserver) WaitNodesReady(ctx context.Context, settings domain.Settings, timeout time.Duration) error {
	args := m.Called(ctx, settings, timeout)
	return args.Error(0)
}

func (m *MockClusterObserver) WaitDeploymentAvailable(ctx context.Context, settings domain.Settings, namespace, name string, timeout time.Duration) error {
	args := m.Called(ctx, settings, namespace, name, timeout)
	return args.Error(0)
}

func (m *MockClusterObserver) CurrentContext(settings domain.Settings) (string, error) {
	args := m.Called(settings)
	return args.String(0), args.Error(1)
}
