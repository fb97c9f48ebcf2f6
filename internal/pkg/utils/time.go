package utils

import (
	"time"

	"vitalis-service/internal/pkg/constvars"
)

// ParseAppointmentDatetime accepts the RFC3339 timestamps stored by the
// booking flow as well as the naive "2006-01-02 15:04" form older
// conversations still carry.
func ParseAppointmentDatetime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02 15:04", value)
}

// FormatAppointmentDatetime renders a stored appointment datetime for
// customer-facing messages. Unparseable values pass through unchanged.
func FormatAppointmentDatetime(value string) string {
	parsed, err := ParseAppointmentDatetime(value)
	if err != nil {
		return value
	}
	return parsed.Format("02/01/2006 a las 03:04 PM")
}

func CalculateAppointmentEnd(start time.Time) time.Time {
	return start.Add(constvars.AppointmentLengthInMinutes * time.Minute)
}
