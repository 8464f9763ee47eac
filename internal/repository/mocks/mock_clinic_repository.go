package mocks

import (
	"context"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) FindByID(ctx context.Context, id string) (*model.Clinic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Clinic), args.Error(1)
}

func (m *MockClinicRepository) List(ctx context.Context) ([]model.Clinic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Clinic), args.Error(1)
}

func (m *MockClinicRepository) UpdateProfile(ctx context.Context, id string, up repository.ClinicProfileUpdate) error {
	args := m.Called(ctx, id, up)
	return args.Error(0)
}
