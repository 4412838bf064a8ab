package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
)

// MockDiagnosticCollector provides a testify mock for ports.DiagnosticCollector
type MockDiagnosticCollector struct {
	mock.Mock
}

func (m *MockDiagnosticCollector) Collect(routine domain.DiagnosticRoutine) {
	m.Called(routine)
}
