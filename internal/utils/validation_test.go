package utils

import (
	"testing"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateShiftTime(t *testing.T) {
	t.Run("valid shift", func(t *testing.T) {
		shift := &domain.Shift{Name: "早班", StartTime: "09:00", EndTime: "18:00"}
		assert.NoError(t, ValidateShiftTime(shift))
	})

	t.Run("overnight shift is valid", func(t *testing.T) {
		shift := &domain.Shift{Name: "夜班", StartTime: "22:00", EndTime: "07:00"}
		assert.NoError(t, ValidateShiftTime(shift))
	})

	t.Run("bad start time", func(t *testing.T) {
		shift := &domain.Shift{Name: "早班", StartTime: "9:00am", EndTime: "18:00"}
		assert.Error(t, ValidateShiftTime(shift))
	})

	t.Run("bad end time", func(t *testing.T) {
		shift := &domain.Shift{Name: "早班", StartTime: "09:00", EndTime: "25:00"}
		assert.Error(t, ValidateShiftTime(shift))
	})
}

func TestValidateRosterMonth(t *testing.T) {
	assert.NoError(t, ValidateRosterMonth(2024, 7))
	assert.NoError(t, ValidateRosterMonth(2000, 1))
	assert.NoError(t, ValidateRosterMonth(2200, 12))

	assert.Error(t, ValidateRosterMonth(1999, 7))
	assert.Error(t, ValidateRosterMonth(2201, 7))
	assert.Error(t, ValidateRosterMonth(2024, 0))
	assert.Error(t, ValidateRosterMonth(2024, 13))
}
