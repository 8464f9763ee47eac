package mocks

import (
	"context"

	"clinicadmin/internal/model"
	"clinicadmin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, clinicID, category string) ([]model.Document, error) {
	args := m.Called(ctx, clinicID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Upload(ctx context.Context, clinicID string, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, clinicID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, clinicID, id string) (*model.Document, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) DownloadURL(ctx context.Context, clinicID, id string) (*service.DownloadLink, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadLink), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, clinicID, id string) error {
	args := m.Called(ctx, clinicID, id)
	return args.Error(0)
}
