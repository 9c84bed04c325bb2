package generator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/google/uuid"
)

// DayProcessor synthesizes and stores the records of one day.
type DayProcessor interface {
	ProcessDate(ctx context.Context, date time.Time) (int, error)
}

// Runner keeps the store filled with one day of synthetic data per calendar day. It resumes from
// the date saved in the generator status and catches up to today before waiting for the next tick.
type Runner struct {
	log        *slog.Logger
	sales      DayProcessor
	roster     DayProcessor
	statusRepo repository.StatusRepoIface
	metrics    *metrics.Metrics
	startDate  time.Time
	now        func() time.Time
}

func NewRunner(
	log *slog.Logger,
	sales, roster DayProcessor,
	statusRepo repository.StatusRepoIface,
	metrics *metrics.Metrics,
	startDate time.Time,
) *Runner {
	return &Runner{
		log:        log,
		sales:      sales,
		roster:     roster,
		statusRepo: statusRepo,
		metrics:    metrics,
		startDate:  dates.Day(startDate),
		now:        time.Now,
	}
}

// WithClock makes the runner read the current day from now, e.g. to follow the restaurant's timezone.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

func (r *Runner) initLogger(opn string) *slog.Logger {
	return r.log.With(
		slog.String("op", opn),
		slog.String("division", "generator"),
	)
}

func (r *Runner) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Generator.Start"
	log := r.initLogger(opn)

	// 1. Catch-up mode
	if err := r.catchUpToNow(ctx); err != nil {
		return fmt.Errorf("failed during catch-up process: %w", err)
	}

	// 2. Maintenance mode
	log.InfoContext(ctx, "Switching to maintenance mode.", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.InfoContext(ctx, "Periodic check triggered.")
			if err := r.catchUpToNow(ctx); err != nil {
				log.ErrorContext(ctx, "Periodic run failed", sl.Err(err))
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Service shutting down.")
			return nil
		}
	}
}

func (r *Runner) catchUpToNow(ctx context.Context) error {
	const opn = "Generator.catchUpToNow"
	log := r.initLogger(opn)

	log.InfoContext(ctx, "Starting catch-up mode")

	for {
		lastDate, err := r.GetLastDate(ctx)
		if err != nil {
			return fmt.Errorf("failed to get latest processed date: %w", err)
		}

		today := dates.Day(r.now())
		if dates.Day(lastDate).After(today) {
			log.InfoContext(ctx, "Catch-up complete. Last processed date is up-to-date.",
				"lastDate", lastDate.Format(time.DateOnly))
			return nil
		}

		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "Catch-up cancelled.")
			return fmt.Errorf("catch-up interrupted: %w", ctx.Err())
		default:
		}

		if err = r.ProcessDate(ctx, lastDate); err != nil {
			return fmt.Errorf("failed to process date %s during catch-up: %w", lastDate.Format(time.DateOnly), err)
		}
	}
}

// ProcessDate generates the sales and the roster of date and records the following day as the
// next one to process.
func (r *Runner) ProcessDate(ctx context.Context, date time.Time) error {
	const opn = "Generator.processDate"
	log := r.initLogger(opn).With(slog.String("run_id", uuid.NewString()))
	startTime := time.Now()

	date = dates.Day(date)
	dateKey := date.Format(time.DateOnly)

	salesCount, err := r.sales.ProcessDate(ctx, date)
	if err != nil {
		r.metrics.Runs.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to generate sales for '%s': %w", dateKey, err)
	}

	shiftCount, err := r.roster.ProcessDate(ctx, date)
	if err != nil {
		r.metrics.Runs.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to generate roster for '%s': %w", dateKey, err)
	}

	nextDate := date.AddDate(0, 0, 1)
	if err = r.statusRepo.SaveProcessedDate(ctx, nextDate); err != nil {
		r.metrics.Runs.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to save next processed date '%s': %w", nextDate.Format(time.DateOnly), err)
	}

	log.InfoContext(ctx, "Successfully processed date", "date", dateKey, "sales", salesCount, "shifts", shiftCount)
	r.metrics.Runs.WithLabelValues("success").Inc()
	r.metrics.LastSuccessfulRun.WithLabelValues("generator").SetToCurrentTime()
	r.metrics.RunDuration.WithLabelValues("generator").Observe(time.Since(startTime).Seconds())
	return nil
}

// GetLastDate returns the next date to generate, or the configured start date when nothing
// has been generated yet.
func (r *Runner) GetLastDate(ctx context.Context) (time.Time, error) {
	lastDate, err := r.statusRepo.GetLastProcessedDate(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.startDate, nil
		}
		return time.Time{}, fmt.Errorf("failed to get latest processed date: %w", err)
	}

	return lastDate, nil
}
