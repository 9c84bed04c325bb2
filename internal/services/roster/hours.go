package roster

import (
	"fmt"
	"math"
	"time"

	"github.com/UnknownOlympus/hestia/internal/importer"
	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// WorkedHours returns the hours between start and end less the meal breaks, floored at zero and
// rounded to two decimals. An end earlier than start means the shift crossed midnight.
func WorkedHours(start, end models.TimeOfDay, breaks []importer.MealBreak) float64 {
	elapsed := end.Since(start)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}

	var breakMinutes float64
	for _, mealBreak := range breaks {
		if mealBreak.Duration != nil {
			breakMinutes += *mealBreak.Duration
		}
	}

	hours := elapsed.Hours() - breakMinutes/60 //nolint:mnd // minutes per hour
	return round2(math.Max(0, hours))
}

// ParseWorkedHours is WorkedHours over clock strings. A string that is not a valid time
// is an error.
func ParseWorkedHours(start, end string, breaks []importer.MealBreak) (float64, error) {
	startTime, err := dates.ParseTime(start)
	if err != nil {
		return 0, fmt.Errorf("failed to parse shift start: %w", err)
	}
	endTime, err := dates.ParseTime(end)
	if err != nil {
		return 0, fmt.Errorf("failed to parse shift end: %w", err)
	}

	return WorkedHours(startTime, endTime, breaks), nil
}

// CalculateWorkedHours is the lenient form of ParseWorkedHours: any failure is logged and
// yields 0.
func (g *Generator) CalculateWorkedHours(start, end string, breaks []importer.MealBreak) float64 {
	hours, err := ParseWorkedHours(start, end, breaks)
	if err != nil {
		g.initLogger("Roster.CalculateWorkedHours").Warn("Error calculating worked hours", sl.Err(err))
		return 0
	}

	return hours
}
