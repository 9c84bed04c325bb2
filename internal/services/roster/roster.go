package roster

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/lib/random"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/shopspring/decimal"
)

// Attendance odds per day. Managers ignore the weekday.
const (
	managerAttendance     = 0.85
	fullTimeAttendance    = 0.70
	partTimeAttendance    = 0.50
	weekendAttendance     = 0.80
	quarterHourIncrements = 4
)

type startWindow struct {
	first, last int
}

var startWindows = map[models.Position]startWindow{
	models.PositionManager: {first: 8, last: 11},
	models.PositionChef:    {first: 9, last: 12},
}

var serviceStartWindow = startWindow{first: 10, last: 15}

type Generator struct {
	log          *slog.Logger
	repo         repository.RosterRepoIface
	employeeRepo repository.EmployeeRepoIface
	metrics      *metrics.Metrics
	rnd          random.Source
	employees    []models.Employee
	policies     map[models.Position]models.PositionPolicy
}

func NewGenerator(
	log *slog.Logger,
	repo repository.RosterRepoIface,
	employeeRepo repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
	rnd random.Source,
) *Generator {
	return &Generator{
		log:          log,
		repo:         repo,
		employeeRepo: employeeRepo,
		metrics:      metrics,
		rnd:          rnd,
		employees:    models.Roster(),
		policies:     models.PositionPolicies(),
	}
}

func (g *Generator) initLogger(opn string) *slog.Logger {
	return g.log.With(
		slog.String("op", opn),
		slog.String("division", "roster"),
	)
}

// ProcessDate synthesizes the shifts of one day and stores them. A shift that cannot be built or
// stored is logged and skipped. It returns the number of shifts stored; an error is returned only
// when the context is cancelled mid-batch.
func (g *Generator) ProcessDate(ctx context.Context, date time.Time) (int, error) {
	const opn = "Roster.ProcessDate"
	log := g.initLogger(opn)

	date = dates.Day(date)
	working := g.WorkingEmployees(date)
	log.DebugContext(ctx, "Generating roster", "date", date.Format(time.DateOnly), "working", len(working))

	var stored int
	for _, employee := range working {
		if err := ctx.Err(); err != nil {
			return stored, fmt.Errorf("roster generation for %s interrupted: %w", date.Format(time.DateOnly), err)
		}

		shift, err := g.GenerateShift(employee, date)
		if err != nil {
			log.WarnContext(ctx, "Failed to build shift, skipped", "employee", employee.Name, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("shift", "validation").Inc()
			continue
		}

		if _, err = g.repo.SaveShift(ctx, shift); err != nil {
			log.WarnContext(ctx, "Failed to store shift, skipped", "employee", employee.Name, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("shift", "storage").Inc()
			continue
		}
		stored++
		g.metrics.RecordsGenerated.WithLabelValues("shift").Inc()
	}

	log.InfoContext(ctx, "Generated roster", "date", date.Format(time.DateOnly), "stored", stored)
	return stored, nil
}

// WorkingEmployees decides independently for every rostered employee whether they work on date.
// The weekly shift count of the position policy is not enforced.
func (g *Generator) WorkingEmployees(date time.Time) []models.Employee {
	weekend := dates.IsWeekend(date)

	var working []models.Employee
	for _, employee := range g.employees {
		if random.Chance(g.rnd, attendance(employee.Position, weekend)) {
			working = append(working, employee)
		}
	}

	return working
}

func attendance(position models.Position, weekend bool) float64 {
	switch {
	case position == models.PositionManager:
		return managerAttendance
	case weekend:
		return weekendAttendance
	case position == models.PositionChef || position == models.PositionServer:
		return fullTimeAttendance
	default:
		return partTimeAttendance
	}
}

// GenerateShift draws a shift for employee on date within the bounds of their position policy.
func (g *Generator) GenerateShift(employee models.Employee, date time.Time) (models.Shift, error) {
	policy, ok := g.policies[employee.Position]
	if !ok {
		return models.Shift{}, fmt.Errorf("%w: no shift policy for position '%s'", models.ErrValidation, employee.Position)
	}

	hours := round2(random.Uniform(g.rnd, policy.MinHours, policy.MaxHours))

	window, ok := startWindows[employee.Position]
	if !ok {
		window = serviceStartWindow
	}
	start := models.NewTimeOfDay(
		random.IntRange(g.rnd, window.first, window.last),
		g.rnd.IntN(quarterHourIncrements)*15, //nolint:mnd // quarter hours
		0,
	)
	duration := time.Duration(hours * float64(time.Hour)).Round(time.Second)

	return models.Shift{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		ShiftDate:    dates.Day(date),
		StartTime:    start,
		EndTime:      start.Add(duration),
		WorkedHours:  hours,
		HourlyRate:   decimal.NewNullDecimal(employee.HourlyRate),
		TotalCost:    decimal.NewNullDecimal(laborCost(hours, employee.HourlyRate)),
		Position:     string(employee.Position),
	}, nil
}

func laborCost(hours float64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(rate).Round(2)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
