package repository

import (
	"context"

	"clinicadmin/internal/model"
)

// ClinicProfileUpdate carries the mutable clinic profile fields.
// Nil pointers mean "leave the stored value untouched"; email and status are
// not mutable through this path at all.
type ClinicProfileUpdate struct {
	Name        *string
	Town        *string
	Phone       *string
	ContactName *string
}

// ClinicRepository defines data access for clinic profile rows.
type ClinicRepository interface {
	// FindByID returns the profile subset of one clinic, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Clinic, error)

	// List returns all clinic profiles, newest first.
	List(ctx context.Context) ([]model.Clinic, error)

	// UpdateProfile applies the provided fields and stamps updated_at.
	// Returns sql.ErrNoRows if the clinic does not exist.
	UpdateProfile(ctx context.Context, id string, up ClinicProfileUpdate) error
}
