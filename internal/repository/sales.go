package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// SaveSale inserts a POS sale and returns the id assigned by the database.
func (r *Repository) SaveSale(ctx context.Context, sale models.Sale) (int64, error) {
	defer r.observe("save_sale", time.Now())

	query := `
		INSERT INTO pos_sales (sale_date, sale_time, item_name, item_category, quantity, unit_price, total_amount, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	var saleID int64
	err := r.db.QueryRow(ctx, query,
		sale.SaleDate,
		sale.SaleTime,
		sale.ItemName,
		nullable(sale.ItemCategory),
		sale.Quantity,
		sale.UnitPrice,
		sale.TotalAmount,
		nullable(sale.EmployeeID),
	).Scan(&saleID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to save sale: %w", ErrStorage, err)
	}

	return saleID, nil
}

// GetDailySales returns the sales of one day ordered by sale time.
func (r *Repository) GetDailySales(ctx context.Context, date time.Time) ([]models.Sale, error) {
	defer r.observe("get_daily_sales", time.Now())

	query := `
		SELECT id, sale_date, sale_time, item_name, COALESCE(item_category, ''), quantity, unit_price, total_amount, COALESCE(employee_id, '')
		FROM pos_sales
		WHERE sale_date = $1
		ORDER BY sale_time, id;
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get daily sales: %w", ErrStorage, err)
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var sale models.Sale
		if err = rows.Scan(
			&sale.ID,
			&sale.SaleDate,
			&sale.SaleTime,
			&sale.ItemName,
			&sale.ItemCategory,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.TotalAmount,
			&sale.EmployeeID,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan sale: %w", ErrStorage, err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate sales: %w", ErrStorage, err)
	}

	return sales, nil
}

// GetSalesSummary aggregates sales between start and end, both included.
// Every figure is zero when the range holds no sale.
func (r *Repository) GetSalesSummary(ctx context.Context, start, end time.Time) (models.SalesAggregate, error) {
	defer r.observe("sales_summary", time.Now())

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(AVG(total_amount), 0),
			COUNT(DISTINCT sale_date),
			COUNT(DISTINCT employee_id)
		FROM pos_sales
		WHERE sale_date BETWEEN $1 AND $2;
	`

	result := models.SalesAggregate{
		PeriodStart: start.Format(time.DateOnly),
		PeriodEnd:   end.Format(time.DateOnly),
	}

	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&result.TotalTransactions,
		&result.TotalRevenue,
		&result.AvgTransaction,
		&result.ActiveDays,
		&result.ActiveEmployees,
	)
	if err != nil {
		return models.SalesAggregate{}, fmt.Errorf("%w: failed to get sales summary: %w", ErrStorage, err)
	}
	result.AvgTransaction = result.AvgTransaction.Round(2)

	return result, nil
}
