package utils

import (
	"strings"
	"time"
)

// DateLayout is the wire format for flight dates.
const DateLayout = "2006-01-02"

// ParseFlightDate parses a YYYY-MM-DD value into its canonical stored form,
// UTC midnight of that day. Search matching is exact equality, so both the
// write path and the query path go through this function.
func ParseFlightDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Normalize lowercases a name or city for case-insensitive matching.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
