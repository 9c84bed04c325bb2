package repository

import (
	"context"
	"fmt"
	"time"
)

// SaveProcessedDate saves the next date the generator has to produce.
func (r *Repository) SaveProcessedDate(ctx context.Context, date time.Time) error {
	defer r.observe("save_processed_date", time.Now())

	query := `
		INSERT INTO generator_status (id, last_processed_date)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_processed_date = $1, updated_at = CURRENT_TIMESTAMP;`

	_, err := r.db.Exec(ctx, query, date)
	if err != nil {
		return fmt.Errorf("%w: failed to execute insert query: %w", ErrStorage, err)
	}

	return nil
}

// GetLastProcessedDate returns last processed date.
func (r *Repository) GetLastProcessedDate(ctx context.Context) (time.Time, error) {
	defer r.observe("get_processed_date", time.Now())

	query := "SELECT last_processed_date FROM generator_status WHERE id = 1"

	var lastDate time.Time

	err := r.db.QueryRow(ctx, query).Scan(&lastDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last processed date from table generator_status: %w", err)
	}

	return lastDate, nil
}
