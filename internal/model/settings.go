package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayHours describes opening hours for a single weekday.
// Open and Close are "HH:MM" strings, nil when the day is closed.
type DayHours struct {
	Open   *string `json:"open"`
	Close  *string `json:"close"`
	Closed bool    `json:"closed"`
}

// BusinessHours maps lowercase weekday names to opening hours.
// It is stored as a single JSONB column and always replaced as a whole.
type BusinessHours map[string]DayHours

// Value implements driver.Valuer for the JSONB column.
func (b BusinessHours) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for the JSONB column.
func (b *BusinessHours) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = nil
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("unsupported business_hours source type %T", src)
	}
}

// ClinicSettings is the flat per-clinic configuration row.
// Exactly one row exists per clinic; the API reshapes it into the
// attendance/leave/business_hours groups.
type ClinicSettings struct {
	ID       string `json:"id"`
	ClinicID string `json:"clinic_id"`

	RequiredDailyHours   float64 `json:"required_daily_hours"`
	UnpaidBreakMinutes   int     `json:"unpaid_break_minutes"`
	LateThresholdMinutes int     `json:"late_threshold_minutes"`
	OvertimeMultiplier   float64 `json:"overtime_multiplier"`

	AnnualLeaveDays       int  `json:"annual_leave_days"`
	SickLeaveDays         int  `json:"sick_leave_days"`
	MaternityLeaveDays    int  `json:"maternity_leave_days"`
	PaternityLeaveDays    int  `json:"paternity_leave_days"`
	LeaveCarryoverAllowed bool `json:"leave_carryover_allowed"`

	BusinessHours BusinessHours `json:"business_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func hhmm(s string) *string { return &s }

// DefaultBusinessHours returns the schedule applied to new clinics:
// Mon-Fri 08:00-17:00, Sat 09:00-13:00, Sun closed.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		"monday":    {Open: hhmm("08:00"), Close: hhmm("17:00")},
		"tuesday":   {Open: hhmm("08:00"), Close: hhmm("17:00")},
		"wednesday": {Open: hhmm("08:00"), Close: hhmm("17:00")},
		"thursday":  {Open: hhmm("08:00"), Close: hhmm("17:00")},
		"friday":    {Open: hhmm("08:00"), Close: hhmm("17:00")},
		"saturday":  {Open: hhmm("09:00"), Close: hhmm("13:00")},
		"sunday":    {Closed: true},
	}
}

// DefaultSettings returns a fully-specified settings object carrying the same
// values as the clinic_settings column defaults. It backs the read path when
// the row does not exist yet and its creation fails; the returned object is
// never persisted. Keeping this in one place guards it against drifting from
// the schema defaults.
func DefaultSettings(clinicID string) ClinicSettings {
	return ClinicSettings{
		ClinicID:             clinicID,
		RequiredDailyHours:   8.00,
		UnpaidBreakMinutes:   30,
		LateThresholdMinutes: 15,
		OvertimeMultiplier:   1.50,

		AnnualLeaveDays:       21,
		SickLeaveDays:         10,
		MaternityLeaveDays:    90,
		PaternityLeaveDays:    14,
		LeaveCarryoverAllowed: false,

		BusinessHours: DefaultBusinessHours(),
	}
}
