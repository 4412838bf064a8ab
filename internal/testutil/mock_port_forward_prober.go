package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

// MockPortForwardProber provides a testify mock for core.PortForwardProber
type MockPortForwardProber struct {
	mock.Mock
}

func (m *MockPortForwardProber) Probe(settings domain.Settings, service string, localPort, remotePort int) (domain.ProbeOutcome, ports.DetachedHandle, error) {
	args := m.Called(settings, service, localPort, remotePort)
	if args.Get(1) == nil {
		return args.Get(0).(domain.ProbeOutcome), nil, args.Error(2)
	}
	return args.Get(0).(domain.ProbeOutcome), args.Get(1).(ports.DetachedHandle), args.Error(2)
}
