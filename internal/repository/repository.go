package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// ErrStorage wraps every failure reported by the record store.
var ErrStorage = errors.New("storage error")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// SalesRepoIface represents the interface for interacting with POS sales in the repository.
type SalesRepoIface interface {
	SaveSale(ctx context.Context, sale models.Sale) (int64, error)
	GetDailySales(ctx context.Context, date time.Time) ([]models.Sale, error)
	GetSalesSummary(ctx context.Context, start, end time.Time) (models.SalesAggregate, error)
}

func NewSalesRepository(db Database, metrics *metrics.Metrics) SalesRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// RosterRepoIface represents the interface for interacting with roster shifts in the repository.
type RosterRepoIface interface {
	SaveShift(ctx context.Context, shift models.Shift) (int64, error)
	GetDailyShifts(ctx context.Context, date time.Time) ([]models.Shift, error)
	GetRosterSummary(ctx context.Context, start, end time.Time) (models.RosterAggregate, error)
}

func NewRosterRepository(db Database, metrics *metrics.Metrics) RosterRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// EmployeeRepoIface represents the interface for interacting with employee master data.
type EmployeeRepoIface interface {
	UpsertEmployee(ctx context.Context, employee models.Employee) error
	GetEmployeeByID(ctx context.Context, identifier string) (models.Employee, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

type StatusRepoIface interface {
	SaveProcessedDate(ctx context.Context, date time.Time) error
	GetLastProcessedDate(ctx context.Context) (time.Time, error)
}

func NewStatusRepository(db Database, metrics *metrics.Metrics) StatusRepoIface {
	return &Repository{db: db, metrics: metrics}
}

func (r *Repository) observe(queryType string, startTime time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

// nullable maps an empty optional text column to NULL.
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
