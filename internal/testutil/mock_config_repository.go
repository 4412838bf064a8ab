package testutil

import (
	"github.com/stretchr/testify/mock"

	"kindev/internal/core/domain"
)

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) LoadSettings() (domain.Settings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return domain.Settings{}, args.Error(1)
	}
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockConfigRepository) EnvFilePath() string {
	args := m.Called()
	return args.String(0)
}
