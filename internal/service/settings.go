package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
)

// ErrClinicNotFound is returned when the tenant itself does not exist.
var ErrClinicNotFound = errors.New("clinic not found")

// AttendanceSettings is the attendance group of the settings response.
type AttendanceSettings struct {
	RequiredDailyHours   float64 `json:"required_daily_hours"`
	UnpaidBreakMinutes   int     `json:"unpaid_break_minutes"`
	LateThresholdMinutes int     `json:"late_threshold_minutes"`
	OvertimeMultiplier   float64 `json:"overtime_multiplier"`
}

// LeaveSettings is the leave group of the settings response.
type LeaveSettings struct {
	AnnualLeaveDays       int  `json:"annual_leave_days"`
	SickLeaveDays         int  `json:"sick_leave_days"`
	MaternityLeaveDays    int  `json:"maternity_leave_days"`
	PaternityLeaveDays    int  `json:"paternity_leave_days"`
	LeaveCarryoverAllowed bool `json:"leave_carryover_allowed"`
}

// SettingsGroups is the flat settings row reshaped into its three semantic
// groups. Columns outside these groups are invisible to the API by
// construction.
type SettingsGroups struct {
	Attendance    AttendanceSettings  `json:"attendance"`
	Leave         LeaveSettings       `json:"leave"`
	BusinessHours model.BusinessHours `json:"business_hours"`
}

// SettingsResult is the service-level DTO for a settings read.
type SettingsResult struct {
	Clinic   *model.Clinic  `json:"clinic"`
	Settings SettingsGroups `json:"settings"`
}

// ClinicProfileInput carries the clinic profile fields mutable via the
// settings update path. Email and status are deliberately absent.
type ClinicProfileInput struct {
	Name        *string `json:"name"`
	Town        *string `json:"town"`
	Phone       *string `json:"phone"`
	ContactName *string `json:"contact_name"`
}

// AttendanceInput is the sparse attendance group of an update request.
// Nil means "not supplied, keep the stored value".
type AttendanceInput struct {
	RequiredDailyHours   *float64 `json:"required_daily_hours"`
	UnpaidBreakMinutes   *int     `json:"unpaid_break_minutes"`
	LateThresholdMinutes *int     `json:"late_threshold_minutes"`
	OvertimeMultiplier   *float64 `json:"overtime_multiplier"`
}

// LeaveInput is the sparse leave group of an update request.
type LeaveInput struct {
	AnnualLeaveDays       *int  `json:"annual_leave_days"`
	SickLeaveDays         *int  `json:"sick_leave_days"`
	MaternityLeaveDays    *int  `json:"maternity_leave_days"`
	PaternityLeaveDays    *int  `json:"paternity_leave_days"`
	LeaveCarryoverAllowed *bool `json:"leave_carryover_allowed"`
}

// SettingsUpdateInput is a partial settings update. Scalars merge field by
// field; BusinessHours, when present, replaces the whole stored object.
type SettingsUpdateInput struct {
	Clinic        *ClinicProfileInput `json:"clinic"`
	Attendance    *AttendanceInput    `json:"attendance"`
	Leave         *LeaveInput         `json:"leave"`
	BusinessHours model.BusinessHours `json:"business_hours"`
}

// SettingsService reads and partially updates per-clinic configuration.
type SettingsService interface {
	// Get returns the clinic profile and its grouped settings, lazily
	// creating the settings row on first access.
	Get(ctx context.Context, clinicID string) (*SettingsResult, error)

	// Update applies a partial update: clinic profile first (fatal on
	// failure), then a sparse settings upsert. Supplying no fields at all is
	// a valid no-op.
	Update(ctx context.Context, clinicID string, in SettingsUpdateInput) error
}

type settingsService struct {
	clinics  repository.ClinicRepository
	settings repository.SettingsRepository
	log      zerolog.Logger
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(clinics repository.ClinicRepository, settings repository.SettingsRepository, log zerolog.Logger) SettingsService {
	return &settingsService{
		clinics:  clinics,
		settings: settings,
		log:      log.With().Str("component", "settings_service").Logger(),
	}
}

func (s *settingsService) Get(ctx context.Context, clinicID string) (*SettingsResult, error) {
	clinic, err := s.clinics.FindByID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("load clinic: %w", err)
	}

	row, err := s.settings.FindByClinic(ctx, clinicID)
	if errors.Is(err, sql.ErrNoRows) {
		// Race between clinic creation and the auto-create trigger: make the
		// row on demand. If creation itself fails (transient store error, or
		// a concurrent insert winning the unique constraint), serve the
		// in-memory defaults without persisting them; the next read retries.
		row, err = s.settings.CreateDefault(ctx, clinicID)
		if err != nil {
			s.log.Warn().Err(err).Str("clinic_id", clinicID).
				Msg("settings row creation failed, serving in-memory defaults")
			def := model.DefaultSettings(clinicID)
			row = &def
		}
	} else if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &SettingsResult{
		Clinic:   clinic,
		Settings: groupSettings(row),
	}, nil
}

func (s *settingsService) Update(ctx context.Context, clinicID string, in SettingsUpdateInput) error {
	if in.Clinic != nil {
		up := repository.ClinicProfileUpdate{
			Name:        in.Clinic.Name,
			Town:        in.Clinic.Town,
			Phone:       in.Clinic.Phone,
			ContactName: in.Clinic.ContactName,
		}
		if err := s.clinics.UpdateProfile(ctx, clinicID, up); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrClinicNotFound
			}
			return fmt.Errorf("update clinic profile: %w", err)
		}
	}

	up := buildSettingsUpdate(in)
	if up.IsEmpty() {
		// Nothing to write; an empty payload is not an error.
		return nil
	}
	if err := s.settings.Upsert(ctx, clinicID, up); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

// buildSettingsUpdate copies only the fields explicitly present in the
// request into the repository update set.
func buildSettingsUpdate(in SettingsUpdateInput) repository.SettingsUpdate {
	var up repository.SettingsUpdate
	if a := in.Attendance; a != nil {
		up.RequiredDailyHours = a.RequiredDailyHours
		up.UnpaidBreakMinutes = a.UnpaidBreakMinutes
		up.LateThresholdMinutes = a.LateThresholdMinutes
		up.OvertimeMultiplier = a.OvertimeMultiplier
	}
	if l := in.Leave; l != nil {
		up.AnnualLeaveDays = l.AnnualLeaveDays
		up.SickLeaveDays = l.SickLeaveDays
		up.MaternityLeaveDays = l.MaternityLeaveDays
		up.PaternityLeaveDays = l.PaternityLeaveDays
		up.LeaveCarryoverAllowed = l.LeaveCarryoverAllowed
	}
	up.BusinessHours = in.BusinessHours
	return up
}

func groupSettings(row *model.ClinicSettings) SettingsGroups {
	return SettingsGroups{
		Attendance: AttendanceSettings{
			RequiredDailyHours:   row.RequiredDailyHours,
			UnpaidBreakMinutes:   row.UnpaidBreakMinutes,
			LateThresholdMinutes: row.LateThresholdMinutes,
			OvertimeMultiplier:   row.OvertimeMultiplier,
		},
		Leave: LeaveSettings{
			AnnualLeaveDays:       row.AnnualLeaveDays,
			SickLeaveDays:         row.SickLeaveDays,
			MaternityLeaveDays:    row.MaternityLeaveDays,
			PaternityLeaveDays:    row.PaternityLeaveDays,
			LeaveCarryoverAllowed: row.LeaveCarryoverAllowed,
		},
		BusinessHours: row.BusinessHours,
	}
}
