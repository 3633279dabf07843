package util

import (
	"fmt"
	"time"
)

// SameMonth reports whether the date falls within the given calendar month.
// The comparison is numeric on year and month; month strings are never
// prefix-matched.
func SameMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}

// FormatMonth renders a year/month pair as "2006-01", always zero-padding
// the month to two digits.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonth parses a "2006-01" month string.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// PreviousMonth returns the calendar month immediately before the given one.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
