package repository

import (
	"context"

	"clinicadmin/internal/model"
)

// SettingsUpdate is the sparse update set for a clinic's settings row.
// A nil pointer means the field was not supplied and keeps its stored value;
// BusinessHours, when non-nil, replaces the whole stored object.
type SettingsUpdate struct {
	RequiredDailyHours   *float64
	UnpaidBreakMinutes   *int
	LateThresholdMinutes *int
	OvertimeMultiplier   *float64

	AnnualLeaveDays       *int
	SickLeaveDays         *int
	MaternityLeaveDays    *int
	PaternityLeaveDays    *int
	LeaveCarryoverAllowed *bool

	BusinessHours model.BusinessHours
}

// IsEmpty reports whether the update carries no fields at all.
func (u SettingsUpdate) IsEmpty() bool {
	return u.RequiredDailyHours == nil &&
		u.UnpaidBreakMinutes == nil &&
		u.LateThresholdMinutes == nil &&
		u.OvertimeMultiplier == nil &&
		u.AnnualLeaveDays == nil &&
		u.SickLeaveDays == nil &&
		u.MaternityLeaveDays == nil &&
		u.PaternityLeaveDays == nil &&
		u.LeaveCarryoverAllowed == nil &&
		u.BusinessHours == nil
}

// SettingsRepository defines data access for clinic settings rows.
// The clinic_id uniqueness constraint is the only coordination point: a lost
// race on first creation surfaces as a plain insert error for the caller to
// absorb.
type SettingsRepository interface {
	// FindByClinic returns the settings row for a clinic, or sql.ErrNoRows.
	FindByClinic(ctx context.Context, clinicID string) (*model.ClinicSettings, error)

	// CreateDefault inserts a settings row with only clinic_id set, relying on
	// column defaults for everything else, and returns the stored row.
	CreateDefault(ctx context.Context, clinicID string) (*model.ClinicSettings, error)

	// Upsert inserts or updates the settings row keyed by the clinic_id unique
	// constraint, applying only the fields present in up and stamping updated_at.
	Upsert(ctx context.Context, clinicID string, up SettingsUpdate) error
}
