package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// UpsertEmployee stores an employee master record, replacing the existing row with the same id.
func (r *Repository) UpsertEmployee(ctx context.Context, employee models.Employee) error {
	defer r.observe("upsert_employee", time.Now())

	query := `
		INSERT INTO employees (employee_id, name, position, hourly_rate, email, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE
		SET name = EXCLUDED.name, position = EXCLUDED.position, hourly_rate = EXCLUDED.hourly_rate,
			email = EXCLUDED.email, active = EXCLUDED.active, updated_at = CURRENT_TIMESTAMP;
	`

	_, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		string(employee.Position),
		employee.HourlyRate,
		nullable(employee.Email),
		employee.Active,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert employee: %w", ErrStorage, err)
	}

	return nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier string) (models.Employee, error) {
	var result models.Employee
	var position string

	defer r.observe("get_employee_by_id", time.Now())
	query := `SELECT employee_id, name, COALESCE(position, ''), hourly_rate, COALESCE(email, ''), active FROM employees WHERE employee_id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&result.ID, &result.Name, &position, &result.HourlyRate, &result.Email, &result.Active)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	result.Position = models.Position(position)

	return result, nil
}
