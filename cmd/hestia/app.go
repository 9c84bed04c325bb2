package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/random"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/services/reports"
	"github.com/UnknownOlympus/hestia/internal/services/roster"
	"github.com/UnknownOlympus/hestia/internal/services/sales"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app carries everything a subcommand needs once the configuration is loaded.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	pool     *pgxpool.Pool
	reg      *prometheus.Registry
	metrics  *metrics.Metrics
	location *time.Location

	salesRepo  repository.SalesRepoIface
	rosterRepo repository.RosterRepoIface
	statusRepo repository.StatusRepoIface

	sales   *sales.Generator
	roster  *roster.Generator
	reports *reports.Builder
}

func newApp(ctx context.Context, configPath string, logOut io.Writer) (*app, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := setupLogger(cfg.Env, cfg.Settings.EnableLogging, logOut)

	location, err := time.LoadLocation(cfg.Restaurant.Timezone)
	if err != nil {
		logger.WarnContext(ctx, "Unknown restaurant timezone, using local time",
			"timezone", cfg.Restaurant.Timezone)
		location = time.Local
	}

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	pool, err := repository.NewDatabase(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	salesRepo := repository.NewSalesRepository(pool, appMetrics)
	rosterRepo := repository.NewRosterRepository(pool, appMetrics)
	employeeRepo := repository.NewEmployeeRepository(pool, appMetrics)
	rnd := random.New(cfg.Generator.Seed)

	return &app{
		cfg:        cfg,
		log:        logger,
		pool:       pool,
		reg:        reg,
		metrics:    appMetrics,
		location:   location,
		salesRepo:  salesRepo,
		rosterRepo: rosterRepo,
		statusRepo: repository.NewStatusRepository(pool, appMetrics),
		sales:      sales.NewGenerator(logger, salesRepo, appMetrics, rnd),
		roster:     roster.NewGenerator(logger, rosterRepo, employeeRepo, appMetrics, rnd),
		reports:    reports.NewBuilder(logger, salesRepo, rosterRepo, cfg.Restaurant.Name),
	}, nil
}

func (a *app) close() {
	a.pool.Close()
}

// now is the current time at the restaurant.
func (a *app) now() time.Time {
	return time.Now().In(a.location)
}

// resolveDate returns the day named by value, or the day of now when value is empty.
func resolveDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return dates.Day(now), nil
	}

	date, err := dates.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}

	return date, nil
}
