package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const day = 24 * time.Hour

// TimeOfDay is a wall-clock time with second precision, stored as the offset from midnight.
// Arithmetic on it wraps around midnight.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from its clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second).normalize()
}

// TimeOfDayFromTime keeps only the clock component of t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) normalize() TimeOfDay {
	d := time.Duration(t) % day
	if d < 0 {
		d += day
	}
	return TimeOfDay(d)
}

// Add returns the wall-clock time d after t; the date part is dropped.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeOfDay(time.Duration(t) + d).normalize()
}

func (t TimeOfDay) Hour() int   { return int(time.Duration(t) / time.Hour) }
func (t TimeOfDay) Minute() int { return int(time.Duration(t) % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int { return int(time.Duration(t) % time.Minute / time.Second) }

// Since returns the elapsed time from start to t on the same calendar day.
func (t TimeOfDay) Since(start TimeOfDay) time.Duration {
	return time.Duration(t) - time.Duration(start)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode time of day: %w", err)
	}
	parsed, err := time.Parse(time.TimeOnly, raw)
	if err != nil {
		return fmt.Errorf("failed to parse time of day '%s': %w", raw, err)
	}
	*t = TimeOfDayFromTime(parsed)
	return nil
}

// ScanTime implements pgtype.TimeScanner so TIME columns scan directly into TimeOfDay.
func (t *TimeOfDay) ScanTime(v pgtype.Time) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into TimeOfDay")
	}
	*t = TimeOfDay(time.Duration(v.Microseconds) * time.Microsecond).normalize()
	return nil
}

// TimeValue implements pgtype.TimeValuer.
func (t TimeOfDay) TimeValue() (pgtype.Time, error) {
	return pgtype.Time{Microseconds: time.Duration(t).Microseconds(), Valid: true}, nil
}
