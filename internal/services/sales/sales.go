package sales

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/lib/random"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/shopspring/decimal"
)

const (
	weekdayMinTransactions = 80
	weekdayMaxTransactions = 120
	weekendMinTransactions = 120
	weekendMaxTransactions = 180

	firstSaleHour = 9
	lastSaleHour  = 22
)

// quantityWeights are the relative odds of selling one, two or three units in a line.
var quantityWeights = []int{80, 15, 5}

type Generator struct {
	log       *slog.Logger
	repo      repository.SalesRepoIface
	metrics   *metrics.Metrics
	rnd       random.Source
	menu      []models.MenuItem
	employees []string
}

func NewGenerator(
	log *slog.Logger,
	repo repository.SalesRepoIface,
	metrics *metrics.Metrics,
	rnd random.Source,
) *Generator {
	roster := models.Roster()
	employees := make([]string, 0, len(roster))
	for _, employee := range roster {
		employees = append(employees, employee.ID)
	}

	return &Generator{
		log:       log,
		repo:      repo,
		metrics:   metrics,
		rnd:       rnd,
		menu:      models.Menu(),
		employees: employees,
	}
}

func (g *Generator) initLogger(opn string) *slog.Logger {
	return g.log.With(
		slog.String("op", opn),
		slog.String("division", "sales"),
	)
}

// ProcessDate synthesizes the sales of one day and stores them. A sale that cannot be stored is
// logged and skipped. It returns the number of sales stored; an error is returned only when the
// context is cancelled mid-batch.
func (g *Generator) ProcessDate(ctx context.Context, date time.Time) (int, error) {
	const opn = "Sales.ProcessDate"
	log := g.initLogger(opn)

	date = dates.Day(date)
	count := g.TransactionCount(date)
	log.DebugContext(ctx, "Generating sales", "date", date.Format(time.DateOnly), "transactions", count)

	var stored int
	for range count {
		if err := ctx.Err(); err != nil {
			return stored, fmt.Errorf("sales generation for %s interrupted: %w", date.Format(time.DateOnly), err)
		}

		sale := g.GenerateTransaction(date)
		if _, err := g.repo.SaveSale(ctx, sale); err != nil {
			log.WarnContext(ctx, "Failed to store sale, skipped", "item", sale.ItemName, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("sale", "storage").Inc()
			continue
		}
		stored++
		g.metrics.RecordsGenerated.WithLabelValues("sale").Inc()
	}

	log.InfoContext(ctx, "Generated sales", "date", date.Format(time.DateOnly), "stored", stored, "planned", count)
	return stored, nil
}

// TransactionCount draws the number of sales for date: 80-120 on weekdays, 120-180 on weekends.
func (g *Generator) TransactionCount(date time.Time) int {
	if dates.IsWeekend(date) {
		return random.IntRange(g.rnd, weekendMinTransactions, weekendMaxTransactions)
	}
	return random.IntRange(g.rnd, weekdayMinTransactions, weekdayMaxTransactions)
}

// GenerateTransaction draws a single sale line for date.
func (g *Generator) GenerateTransaction(date time.Time) models.Sale {
	saleTime := models.NewTimeOfDay(
		random.IntRange(g.rnd, firstSaleHour, lastSaleHour),
		random.IntRange(g.rnd, 0, 59),
		random.IntRange(g.rnd, 0, 59),
	)
	item := random.Choice(g.rnd, g.menu)
	quantity := random.Weighted(g.rnd, quantityWeights) + 1
	employeeID := random.Choice(g.rnd, g.employees)

	return models.Sale{
		SaleDate:     dates.Day(date),
		SaleTime:     saleTime,
		ItemName:     item.Name,
		ItemCategory: item.Category,
		Quantity:     quantity,
		UnitPrice:    item.UnitPrice,
		TotalAmount:  item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		EmployeeID:   employeeID,
	}
}
