package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(inv domain.Invocation) (domain.ExecutionResult, error) {
	args := m.Called(inv)
	if args.Get(0) == nil {
		return domain.ExecutionResult{}, args.Error(1)
	}
	return args.Get(0).(domain.ExecutionResult), args.Error(1)
}

func (m *MockCommandRunner) Detach(inv domain.Invocation) (ports.DetachedHandle, error) {
	args := m.Called(inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.DetachedHandle), args.Error(1)
}

func (m *MockCommandRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// MockDetachedHandle provides a testify mock for ports.DetachedHandle
type MockDetachedHandle struct {
	mock.Mock
}

func (m *MockDetachedHandle) Pid() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockDetachedHandle) Terminate() error {
	args := m.Called()
	return args.Error(0)
}
