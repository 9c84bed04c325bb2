package sales

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

// Import validates and stores externally supplied sales. Invalid or unstorable records are
// logged and skipped; the number of stored records is returned.
func (g *Generator) Import(ctx context.Context, records []importer.SaleInput) int {
	const opn = "Sales.Import"
	log := g.initLogger(opn).With(slog.String("run_id", uuid.NewString()))

	var imported int
	for idx, record := range records {
		sale, err := SaleFromInput(record)
		if err != nil {
			log.WarnContext(ctx, "Skipping sale record", "record", idx+1, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("sale", "validation").Inc()
			continue
		}

		if _, err = g.repo.SaveSale(ctx, sale); err != nil {
			log.WarnContext(ctx, "Failed to store imported sale", "record", idx+1, sl.Err(err))
			g.metrics.RecordsSkipped.WithLabelValues("sale", "storage").Inc()
			continue
		}
		imported++
		g.metrics.RecordsImported.WithLabelValues("sale").Inc()
	}

	log.InfoContext(ctx, "Imported sales", "imported", imported, "skipped", len(records)-imported)
	return imported
}

// SaleFromInput checks the mandatory fields of an imported sale and derives the total amount
// when it is absent.
func SaleFromInput(in importer.SaleInput) (models.Sale, error) {
	var missing []string
	if in.SaleDate == nil {
		missing = append(missing, "sale_date")
	}
	if in.SaleTime == nil {
		missing = append(missing, "sale_time")
	}
	if in.ItemName == nil || strings.TrimSpace(*in.ItemName) == "" {
		missing = append(missing, "item_name")
	}
	if in.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if in.UnitPrice == nil {
		missing = append(missing, "unit_price")
	}
	if len(missing) > 0 {
		return models.Sale{}, fmt.Errorf("%w: missing required fields: %s",
			models.ErrValidation, strings.Join(missing, ", "))
	}

	if *in.Quantity <= 0 {
		return models.Sale{}, fmt.Errorf("%w: quantity must be positive, got %d", models.ErrValidation, *in.Quantity)
	}
	if in.UnitPrice.IsNegative() {
		return models.Sale{}, fmt.Errorf("%w: unit price cannot be negative", models.ErrValidation)
	}

	saleDate, err := dates.ParseDate(*in.SaleDate)
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: sale_date: %w", models.ErrValidation, err)
	}
	saleTime, err := dates.ParseTime(*in.SaleTime)
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: sale_time: %w", models.ErrValidation, err)
	}

	sale := models.Sale{
		SaleDate:  saleDate,
		SaleTime:  saleTime,
		ItemName:  strings.TrimSpace(*in.ItemName),
		Quantity:  *in.Quantity,
		UnitPrice: *in.UnitPrice,
	}
	if in.ItemCategory != nil {
		sale.ItemCategory = *in.ItemCategory
	}
	if in.EmployeeID != nil {
		if !dates.ValidateEmployeeID(*in.EmployeeID) {
			return models.Sale{}, fmt.Errorf("%w: malformed employee_id '%s'", models.ErrValidation, *in.EmployeeID)
		}
		sale.EmployeeID = *in.EmployeeID
	}

	if in.TotalAmount != nil {
		sale.TotalAmount = *in.TotalAmount
	} else {
		sale.TotalAmount = sale.UnitPrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	}

	return sale, nil
}
