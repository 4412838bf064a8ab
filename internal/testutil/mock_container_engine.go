package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockContainerEngine provides a testify mock for ports.ContainerEngine
type MockContainerEngine struct {
	mock.Mock
}

func (m *MockContainerEngine) ContainerRunning(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockContainerEngine) StartContainer(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
