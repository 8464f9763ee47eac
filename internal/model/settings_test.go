package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessHoursScan(t *testing.T) {
	raw := `{"monday":{"open":"08:00","close":"17:00","closed":false},"sunday":{"open":null,"close":null,"closed":true}}`

	t.Run("bytes", func(t *testing.T) {
		var bh BusinessHours
		require.NoError(t, bh.Scan([]byte(raw)))
		assert.Equal(t, "08:00", *bh["monday"].Open)
		assert.True(t, bh["sunday"].Closed)
		assert.Nil(t, bh["sunday"].Open)
	})

	t.Run("string", func(t *testing.T) {
		var bh BusinessHours
		require.NoError(t, bh.Scan(raw))
		assert.Len(t, bh, 2)
	})

	t.Run("null column", func(t *testing.T) {
		bh := BusinessHours{"monday": {}}
		require.NoError(t, bh.Scan(nil))
		assert.Nil(t, bh)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var bh BusinessHours
		assert.Error(t, bh.Scan(42))
	})
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("clinic-1")

	assert.Equal(t, "clinic-1", s.ClinicID)
	assert.Equal(t, 8.00, s.RequiredDailyHours)
	assert.Equal(t, 1.50, s.OvertimeMultiplier)
	assert.Equal(t, 90, s.MaternityLeaveDays)
	assert.False(t, s.LeaveCarryoverAllowed)

	// Weekdays open, Saturday short, Sunday closed
	assert.Equal(t, "08:00", *s.BusinessHours["wednesday"].Open)
	assert.Equal(t, "13:00", *s.BusinessHours["saturday"].Close)
	assert.True(t, s.BusinessHours["sunday"].Closed)
}
