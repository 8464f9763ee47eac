package mocks

import (
	"context"

	"clinicadmin/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockClinicService struct {
	mock.Mock
}

func (m *MockClinicService) List(ctx context.Context) ([]model.Clinic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Clinic), args.Error(1)
}
