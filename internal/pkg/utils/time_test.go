package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentDatetime(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := ParseAppointmentDatetime("2026-03-15T14:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 14, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())
	})

	t.Run("naive", func(t *testing.T) {
		parsed, err := ParseAppointmentDatetime("2026-03-15 09:00")
		assert.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseAppointmentDatetime("next tuesday")
		assert.Error(t, err)
	})
}

func TestFormatAppointmentDatetime(t *testing.T) {
	assert.Equal(t, "15/03/2026 a las 02:30 PM", FormatAppointmentDatetime("2026-03-15T14:30:00Z"))
	assert.Equal(t, "next tuesday", FormatAppointmentDatetime("next tuesday"))
}

func TestCalculateAppointmentEnd(t *testing.T) {
	start := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 15, 20, 0, 0, time.UTC), CalculateAppointmentEnd(start))
}
