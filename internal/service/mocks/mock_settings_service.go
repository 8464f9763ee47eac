package mocks

import (
	"context"

	"clinicadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, clinicID string) (*service.SettingsResult, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettingsResult), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, clinicID string, in service.SettingsUpdateInput) error {
	args := m.Called(ctx, clinicID, in)
	return args.Error(0)
}
