package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the apifootball date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// UTCDate is the calendar date of t in UTC.
func UTCDate(t time.Time) string {
	return FormatDate(t.UTC())
}

// ValidateRange checks that each non-empty bound is a date and that from is not after to.
func ValidateRange(from, to string) error {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = ParseDate(from); err != nil {
			return fmt.Errorf("invalid from date %q: %w", from, err)
		}
	}
	if to != "" {
		if end, err = ParseDate(to); err != nil {
			return fmt.Errorf("invalid to date %q: %w", to, err)
		}
	}
	if from != "" && to != "" && start.After(end) {
		return fmt.Errorf("from date %s is after to date %s", from, to)
	}
	return nil
}
