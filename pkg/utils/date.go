package utils

import (
	"time"
)

// ParseDateTime accepts either an RFC3339 timestamp or a plain
// YYYY-MM-DD date and returns the parsed instant in UTC.
func ParseDateTime(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		parsed, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}
	}

	parsed = parsed.UTC()
	return &parsed, nil
}

// TruncateToDay drops the time-of-day portion of t, in UTC.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
