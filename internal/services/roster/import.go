package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/importer"
	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Import validates and stores externally supplied shifts. Invalid or unstorable records are
// logged and skipped; the number of stored records is returned.
func (g *Generator) Import(ctx context.Context, records []importer.ShiftInput) int {
	const opn = "Roster.Import"
	log := g.initLogger(opn).With(slog.String("run_id", uuid.NewString()))

	var imported int
	for idx, record := range records {
		shift, err := ShiftFromInput(record)
		if err != nil {
			log.WarnContext(ctx, "Skipping roster record", "record", idx+1, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("shift", "validation").Inc()
			continue
		}

		if _, err = g.repo.SaveShift(ctx, shift); err != nil {
			log.WarnContext(ctx, "Failed to store imported shift", "record", idx+1, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("shift", "storage").Inc()
			continue
		}
		imported++
		g.metrics.RecordsImported.WithLabelValues("shift").Inc()
	}

	log.InfoContext(ctx, "Imported roster", "imported", imported, "skipped", len(records)-imported)
	return imported
}

// ShiftFromInput checks the mandatory fields of an imported shift and derives the worked hours
// and total cost when they are absent.
func ShiftFromInput(in importer.ShiftInput) (models.Shift, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"employee_id", in.EmployeeID},
		{"employee_name", in.EmployeeName},
		{"shift_date", in.ShiftDate},
		{"start_time", in.StartTime},
		{"end_time", in.EndTime},
	} {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return models.Shift{}, fmt.Errorf("%w: missing required fields: %s",
			models.ErrValidation, strings.Join(missing, ", "))
	}

	if !dates.ValidateEmployeeID(*in.EmployeeID) {
		return models.Shift{}, fmt.Errorf("%w: malformed employee_id '%s'", models.ErrValidation, *in.EmployeeID)
	}
	if in.WorkedHours != nil && *in.WorkedHours < 0 {
		return models.Shift{}, fmt.Errorf("%w: worked hours cannot be negative", models.ErrValidation)
	}
	if in.HourlyRate != nil && in.HourlyRate.IsNegative() {
		return models.Shift{}, fmt.Errorf("%w: hourly rate cannot be negative", models.ErrValidation)
	}

	shiftDate, err := dates.ParseDate(*in.ShiftDate)
	if err != nil {
		return models.Shift{}, fmt.Errorf("%w: shift_date: %w", models.ErrValidation, err)
	}
	start, err := dates.ParseTime(*in.StartTime)
	if err != nil {
		return models.Shift{}, fmt.Errorf("%w: start_time: %w", models.ErrValidation, err)
	}
	end, err := dates.ParseTime(*in.EndTime)
	if err != nil {
		return models.Shift{}, fmt.Errorf("%w: end_time: %w", models.ErrValidation, err)
	}

	shift := models.Shift{
		EmployeeID:   *in.EmployeeID,
		EmployeeName: strings.TrimSpace(*in.EmployeeName),
		ShiftDate:    shiftDate,
		StartTime:    start,
		EndTime:      end,
	}
	if in.Position != nil {
		shift.Position = *in.Position
	}

	if in.WorkedHours == nil || *in.WorkedHours == 0 {
		shift.WorkedHours = WorkedHours(start, end, in.MealBreaks)
	} else {
		shift.WorkedHours = *in.WorkedHours
	}

	if in.HourlyRate != nil {
		shift.HourlyRate = decimal.NewNullDecimal(*in.HourlyRate)
	}
	switch {
	case in.TotalCost != nil:
		shift.TotalCost = decimal.NewNullDecimal(*in.TotalCost)
	case in.HourlyRate != nil:
		shift.TotalCost = decimal.NewNullDecimal(laborCost(shift.WorkedHours, *in.HourlyRate))
	}

	return shift, nil
}
