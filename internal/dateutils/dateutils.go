// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutMonth    = "January 2006"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	time.RFC3339,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats
// Returns the parsed time and the detected format
func ParseDate(dateStr string) (time.Time, string, error) {
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout
// If no layout is provided, DateLayoutISO is used
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// MonthDisplayName returns the human-readable name of a ledger month,
// e.g. "January 2026". The month index is zero-based (0 = January), the
// convention the ledger uses everywhere.
func MonthDisplayName(year, month int) string {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Format(DateLayoutMonth)
}

// CurrentYearMonth returns the wall-clock year and zero-based month index,
// used to seed a fresh ledger.
func CurrentYearMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month()) - 1
}
