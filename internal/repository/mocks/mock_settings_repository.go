package mocks

import (
	"context"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByClinic(ctx context.Context, clinicID string) (*model.ClinicSettings, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClinicSettings), args.Error(1)
}

func (m *MockSettingsRepository) CreateDefault(ctx context.Context, clinicID string) (*model.ClinicSettings, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClinicSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, clinicID string, up repository.SettingsUpdate) error {
	args := m.Called(ctx, clinicID, up)
	return args.Error(0)
}
