package service

import (
	"context"
	"fmt"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

// ClinicService is the superadmin read surface over clinic profiles.
type ClinicService interface {
	// List returns all clinic profiles, newest first.
	List(ctx context.Context) ([]model.Clinic, error)
}

type clinicService struct {
	repo repository.ClinicRepository
}

// NewClinicService constructs a new ClinicService.
func NewClinicService(repo repository.ClinicRepository) ClinicService {
	return &clinicService{repo: repo}
}

func (s *clinicService) List(ctx context.Context) ([]model.Clinic, error) {
	clinics, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	return clinics, nil
}
