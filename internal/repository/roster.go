package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// SaveShift inserts a roster shift and returns the id assigned by the database.
func (r *Repository) SaveShift(ctx context.Context, shift models.Shift) (int64, error) {
	defer r.observe("save_shift", time.Now())

	query := `
		INSERT INTO roster_data (employee_id, employee_name, shift_date, start_time, end_time, worked_hours, hourly_rate, total_cost, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`

	var shiftID int64
	err := r.db.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.EmployeeName,
		shift.ShiftDate,
		shift.StartTime,
		shift.EndTime,
		shift.WorkedHours,
		shift.HourlyRate,
		shift.TotalCost,
		nullable(shift.Position),
	).Scan(&shiftID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to save shift for '%s': %w", ErrStorage, shift.EmployeeID, err)
	}

	return shiftID, nil
}

// GetDailyShifts returns the shifts of one day ordered by start time.
func (r *Repository) GetDailyShifts(ctx context.Context, date time.Time) ([]models.Shift, error) {
	defer r.observe("get_daily_shifts", time.Now())

	query := `
		SELECT id, employee_id, employee_name, shift_date, start_time, end_time, worked_hours, hourly_rate, total_cost, COALESCE(position, '')
		FROM roster_data
		WHERE shift_date = $1
		ORDER BY start_time, id;
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get daily roster: %w", ErrStorage, err)
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var shift models.Shift
		if err = rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.EmployeeName,
			&shift.ShiftDate,
			&shift.StartTime,
			&shift.EndTime,
			&shift.WorkedHours,
			&shift.HourlyRate,
			&shift.TotalCost,
			&shift.Position,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan shift: %w", ErrStorage, err)
		}
		shifts = append(shifts, shift)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate shifts: %w", ErrStorage, err)
	}

	return shifts, nil
}

// GetRosterSummary aggregates shifts between start and end, both included.
// Every figure is zero when the range holds no shift.
func (r *Repository) GetRosterSummary(ctx context.Context, start, end time.Time) (models.RosterAggregate, error) {
	defer r.observe("roster_summary", time.Now())

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(worked_hours), 0),
			COALESCE(AVG(worked_hours), 0),
			COALESCE(SUM(total_cost), 0),
			COUNT(DISTINCT shift_date),
			COUNT(DISTINCT employee_id)
		FROM roster_data
		WHERE shift_date BETWEEN $1 AND $2;
	`

	result := models.RosterAggregate{
		PeriodStart: start.Format(time.DateOnly),
		PeriodEnd:   end.Format(time.DateOnly),
	}

	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&result.TotalShifts,
		&result.TotalHours,
		&result.AvgHoursPerShift,
		&result.TotalLaborCost,
		&result.ActiveDays,
		&result.ActiveEmployees,
	)
	if err != nil {
		return models.RosterAggregate{}, fmt.Errorf("%w: failed to get roster summary: %w", ErrStorage, err)
	}
	result.AvgHoursPerShift = math.Round(result.AvgHoursPerShift*100) / 100

	return result, nil
}
