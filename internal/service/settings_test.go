package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicadmin/internal/model"
	"clinicadmin/internal/repository"
	repoMocks "clinicadmin/internal/repository/mocks"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }
func strVal(s string) *string     { return &s }

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	clinic := &model.Clinic{ID: "clinic-1", Name: "Sunrise Dental", Status: "active"}

	t.Run("existing row grouped into sections", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		stored := model.DefaultSettings("clinic-1")
		stored.RequiredDailyHours = 7.5
		stored.AnnualLeaveDays = 25

		mClinics.On("FindByID", ctx, "clinic-1").Return(clinic, nil)
		mSettings.On("FindByClinic", ctx, "clinic-1").Return(&stored, nil)

		res, err := svc.Get(ctx, "clinic-1")

		require.NoError(t, err)
		assert.Equal(t, clinic, res.Clinic)
		assert.Equal(t, 7.5, res.Settings.Attendance.RequiredDailyHours)
		assert.Equal(t, 25, res.Settings.Leave.AnnualLeaveDays)
		assert.True(t, res.Settings.BusinessHours["sunday"].Closed)
		mSettings.AssertNotCalled(t, "CreateDefault", mock.Anything, mock.Anything)
	})

	t.Run("missing row is created on first read", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		created := model.DefaultSettings("clinic-1")
		created.ID = "settings-1"

		mClinics.On("FindByID", ctx, "clinic-1").Return(clinic, nil)
		mSettings.On("FindByClinic", ctx, "clinic-1").Return(nil, sql.ErrNoRows)
		mSettings.On("CreateDefault", ctx, "clinic-1").Return(&created, nil)

		res, err := svc.Get(ctx, "clinic-1")

		require.NoError(t, err)
		assert.Equal(t, 8.00, res.Settings.Attendance.RequiredDailyHours)
		mSettings.AssertExpectations(t)
	})

	t.Run("creation failure falls back to in-memory defaults", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("FindByID", ctx, "clinic-1").Return(clinic, nil)
		mSettings.On("FindByClinic", ctx, "clinic-1").Return(nil, sql.ErrNoRows)
		mSettings.On("CreateDefault", ctx, "clinic-1").
			Return(nil, errors.New("duplicate key value violates unique constraint"))

		res, err := svc.Get(ctx, "clinic-1")

		require.NoError(t, err)
		assert.Equal(t, 30, res.Settings.Attendance.UnpaidBreakMinutes)
		assert.Equal(t, 14, res.Settings.Leave.PaternityLeaveDays)
		assert.False(t, res.Settings.Leave.LeaveCarryoverAllowed)
	})

	t.Run("unknown clinic", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		res, err := svc.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrClinicNotFound)
		assert.Nil(t, res)
		mSettings.AssertNotCalled(t, "FindByClinic", mock.Anything, mock.Anything)
	})

	t.Run("settings load error", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("FindByID", ctx, "clinic-1").Return(clinic, nil)
		mSettings.On("FindByClinic", ctx, "clinic-1").Return(nil, errors.New("db fail"))

		_, err := svc.Get(ctx, "clinic-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "load settings")
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("profile and settings applied together", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("UpdateProfile", ctx, "clinic-1", repository.ClinicProfileUpdate{
			Name: strVal("Renamed Clinic"),
		}).Return(nil)
		mSettings.On("Upsert", ctx, "clinic-1", mock.MatchedBy(func(up repository.SettingsUpdate) bool {
			return up.RequiredDailyHours != nil && *up.RequiredDailyHours == 7.5 &&
				up.UnpaidBreakMinutes == nil &&
				up.AnnualLeaveDays != nil && *up.AnnualLeaveDays == 25
		})).Return(nil)

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{
			Clinic:     &ClinicProfileInput{Name: strVal("Renamed Clinic")},
			Attendance: &AttendanceInput{RequiredDailyHours: floatPtr(7.5)},
			Leave:      &LeaveInput{AnnualLeaveDays: intPtr(25)},
		})

		assert.NoError(t, err)
		mClinics.AssertExpectations(t)
		mSettings.AssertExpectations(t)
	})

	t.Run("business hours only", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		bh := model.BusinessHours{"sunday": {Closed: true}}
		mSettings.On("Upsert", ctx, "clinic-1", mock.MatchedBy(func(up repository.SettingsUpdate) bool {
			return up.BusinessHours != nil && up.RequiredDailyHours == nil
		})).Return(nil)

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{BusinessHours: bh})

		assert.NoError(t, err)
		mClinics.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty payload is a no-op", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{})

		assert.NoError(t, err)
		mClinics.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
		mSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty groups still count as a no-op write set", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{
			Attendance: &AttendanceInput{},
			Leave:      &LeaveInput{},
		})

		assert.NoError(t, err)
		mSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown clinic on profile update", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("UpdateProfile", ctx, "missing", mock.Anything).Return(sql.ErrNoRows)

		err := svc.Update(ctx, "missing", SettingsUpdateInput{
			Clinic:     &ClinicProfileInput{Name: strVal("X")},
			Attendance: &AttendanceInput{RequiredDailyHours: floatPtr(9)},
		})

		assert.ErrorIs(t, err, ErrClinicNotFound)
		mSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("profile update failure aborts before settings write", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mClinics.On("UpdateProfile", ctx, "clinic-1", mock.Anything).Return(errors.New("db fail"))

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{
			Clinic: &ClinicProfileInput{Name: strVal("X")},
			Leave:  &LeaveInput{LeaveCarryoverAllowed: boolPtr(true)},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "update clinic profile")
		mSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("settings upsert failure", func(t *testing.T) {
		mClinics := new(repoMocks.MockClinicRepository)
		mSettings := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mClinics, mSettings, zerolog.Nop())

		mSettings.On("Upsert", ctx, "clinic-1", mock.Anything).Return(errors.New("db fail"))

		err := svc.Update(ctx, "clinic-1", SettingsUpdateInput{
			Attendance: &AttendanceInput{OvertimeMultiplier: floatPtr(2.0)},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "update settings")
	})
}
