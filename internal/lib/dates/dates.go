// Package dates holds the lenient date and time parsing used by the CLI and the importers.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// ErrParse is returned when a value matches none of the accepted layouts.
var ErrParse = errors.New("unable to parse")

var dateLayouts = []string{time.DateOnly, "02/01/2006", "01/02/2006", "20060102"}

var timeLayouts = []string{time.TimeOnly, "15:04", "3:04:05 PM", "3:04 PM"}

// ParseDate parses value against the accepted date layouts in order.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w date: '%s'", ErrParse, value)
}

// ParseTime parses value against the accepted clock layouts in order.
func ParseTime(value string) (models.TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return models.TimeOfDayFromTime(parsed), nil
		}
	}

	return 0, fmt.Errorf("%w time: '%s'", ErrParse, value)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateRange lists every day from start to end, both included.
func DateRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var days []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		days = append(days, current)
	}

	return days
}

// Trailing returns the inclusive range of the last days ending on today.
func Trailing(today time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	end := Day(today)
	return end.AddDate(0, 0, -(days - 1)), end
}

// ValidateEmployeeID reports whether id has the form EMP followed by three digits.
func ValidateEmployeeID(id string) bool {
	if len(id) != 6 || !strings.HasPrefix(id, "EMP") {
		return false
	}
	for _, r := range id[3:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
