package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/shopspring/decimal"
)

// DailySummary aggregates the stored shifts of one day.
func (g *Generator) DailySummary(ctx context.Context, date time.Time) (models.DailyRosterSummary, error) {
	date = dates.Day(date)

	shifts, err := g.repo.GetDailyShifts(ctx, date)
	if err != nil {
		return models.DailyRosterSummary{}, fmt.Errorf("failed to get roster for %s: %w", date.Format(time.DateOnly), err)
	}

	return Summarize(date, shifts), nil
}

// Summarize builds the daily view of shifts. Shifts without a cost add nothing to the cost totals.
func Summarize(date time.Time, shifts []models.Shift) models.DailyRosterSummary {
	summary := models.DailyRosterSummary{
		Date:              date.Format(time.DateOnly),
		TotalCost:         decimal.Zero,
		PositionBreakdown: make(map[string]models.PositionStats),
	}

	employees := make(map[string]struct{})
	for _, shift := range shifts {
		cost := decimal.Zero
		if shift.TotalCost.Valid {
			cost = shift.TotalCost.Decimal
		}

		summary.TotalShifts++
		summary.TotalHours += shift.WorkedHours
		summary.TotalCost = summary.TotalCost.Add(cost)
		employees[shift.EmployeeID] = struct{}{}

		stats, ok := summary.PositionBreakdown[shift.Position]
		if !ok {
			stats.Cost = decimal.Zero
		}
		stats.Shifts++
		stats.Hours = round2(stats.Hours + shift.WorkedHours)
		stats.Cost = stats.Cost.Add(cost)
		summary.PositionBreakdown[shift.Position] = stats
	}

	summary.TotalHours = round2(summary.TotalHours)
	summary.EmployeesWorking = len(employees)
	if summary.TotalShifts > 0 {
		summary.AvgHoursPerShift = round2(summary.TotalHours / float64(summary.TotalShifts))
	}

	return summary
}
