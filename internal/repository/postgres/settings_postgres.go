package postgres

import (
	"context"
	"database/sql"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

// SettingsPostgres is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsPostgres struct {
	db *sql.DB
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

const settingsColumns = `id, clinic_id, required_daily_hours, unpaid_break_minutes, late_threshold_minutes, overtime_multiplier, annual_leave_days, sick_leave_days, maternity_leave_days, paternity_leave_days, leave_carryover_allowed, business_hours, created_at, updated_at`

func scanSettings(row interface{ Scan(...any) error }) (*model.ClinicSettings, error) {
	var s model.ClinicSettings
	if err := row.Scan(
		&s.ID,
		&s.ClinicID,
		&s.RequiredDailyHours,
		&s.UnpaidBreakMinutes,
		&s.LateThresholdMinutes,
		&s.OvertimeMultiplier,
		&s.AnnualLeaveDays,
		&s.SickLeaveDays,
		&s.MaternityLeaveDays,
		&s.PaternityLeaveDays,
		&s.LeaveCarryoverAllowed,
		&s.BusinessHours,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByClinic fetches the single settings row of a clinic.
func (r *SettingsPostgres) FindByClinic(ctx context.Context, clinicID string) (*model.ClinicSettings, error) {
	const q = `
		SELECT ` + settingsColumns + `
		FROM clinic_settings
		WHERE clinic_id = $1
	`
	return scanSettings(r.db.QueryRowContext(ctx, q, clinicID))
}

// CreateDefault inserts a settings row carrying only clinic_id; every other
// column takes its schema default. A concurrent insert (the clinic-creation
// trigger, or another first read) trips the clinic_id unique constraint and
// surfaces as a plain error.
func (r *SettingsPostgres) CreateDefault(ctx context.Context, clinicID string) (*model.ClinicSettings, error) {
	const q = `
		INSERT INTO clinic_settings (clinic_id)
		VALUES ($1)
		RETURNING ` + settingsColumns
	return scanSettings(r.db.QueryRowContext(ctx, q, clinicID))
}

// Upsert inserts or updates the settings row keyed by the clinic_id unique
// constraint. Omitted fields (nil parameters) keep their stored values on the
// update branch and take the column defaults on the insert branch; the scalar
// literals below mirror the clinic_settings column defaults.
func (r *SettingsPostgres) Upsert(ctx context.Context, clinicID string, up repository.SettingsUpdate) error {
	const q = `
		INSERT INTO clinic_settings (
			clinic_id,
			required_daily_hours, unpaid_break_minutes, late_threshold_minutes, overtime_multiplier,
			annual_leave_days, sick_leave_days, maternity_leave_days, paternity_leave_days, leave_carryover_allowed,
			business_hours
		)
		VALUES (
			$1,
			COALESCE($2, 8.00), COALESCE($3, 30), COALESCE($4, 15), COALESCE($5, 1.50),
			COALESCE($6, 21), COALESCE($7, 10), COALESCE($8, 90), COALESCE($9, 14), COALESCE($10, false),
			COALESCE($11::jsonb, $12::jsonb)
		)
		ON CONFLICT (clinic_id) DO UPDATE SET
			required_daily_hours    = COALESCE($2, clinic_settings.required_daily_hours),
			unpaid_break_minutes    = COALESCE($3, clinic_settings.unpaid_break_minutes),
			late_threshold_minutes  = COALESCE($4, clinic_settings.late_threshold_minutes),
			overtime_multiplier     = COALESCE($5, clinic_settings.overtime_multiplier),
			annual_leave_days       = COALESCE($6, clinic_settings.annual_leave_days),
			sick_leave_days         = COALESCE($7, clinic_settings.sick_leave_days),
			maternity_leave_days    = COALESCE($8, clinic_settings.maternity_leave_days),
			paternity_leave_days    = COALESCE($9, clinic_settings.paternity_leave_days),
			leave_carryover_allowed = COALESCE($10, clinic_settings.leave_carryover_allowed),
			business_hours          = COALESCE($11::jsonb, clinic_settings.business_hours),
			updated_at              = now()
	`
	_, err := r.db.ExecContext(ctx, q,
		clinicID,
		up.RequiredDailyHours,
		up.UnpaidBreakMinutes,
		up.LateThresholdMinutes,
		up.OvertimeMultiplier,
		up.AnnualLeaveDays,
		up.SickLeaveDays,
		up.MaternityLeaveDays,
		up.PaternityLeaveDays,
		up.LeaveCarryoverAllowed,
		up.BusinessHours,
		model.DefaultBusinessHours(),
	)
	return err
}
