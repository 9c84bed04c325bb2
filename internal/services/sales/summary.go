package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/shopspring/decimal"
)

const topItemsLimit = 5

// DailySummary aggregates the stored sales of one day.
func (g *Generator) DailySummary(ctx context.Context, date time.Time) (models.DailySalesSummary, error) {
	date = dates.Day(date)

	sales, err := g.repo.GetDailySales(ctx, date)
	if err != nil {
		return models.DailySalesSummary{}, fmt.Errorf("failed to get sales for %s: %w", date.Format(time.DateOnly), err)
	}

	return Summarize(date, sales), nil
}

// Summarize builds the daily view of sales. The average of an empty day is zero.
func Summarize(date time.Time, sales []models.Sale) models.DailySalesSummary {
	summary := models.DailySalesSummary{
		Date:            date.Format(time.DateOnly),
		TotalRevenue:    decimal.Zero,
		AvgTransaction:  decimal.Zero,
		TopItems:        []models.ItemQuantity{},
		HourlyBreakdown: make(map[int]models.HourlySales),
	}

	var ranking []models.ItemQuantity
	position := make(map[string]int)

	for _, sale := range sales {
		summary.TotalTransactions++
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
		summary.ItemsSold += sale.Quantity

		if idx, ok := position[sale.ItemName]; ok {
			ranking[idx].Quantity += sale.Quantity
		} else {
			position[sale.ItemName] = len(ranking)
			ranking = append(ranking, models.ItemQuantity{Item: sale.ItemName, Quantity: sale.Quantity})
		}

		hour := sale.SaleTime.Hour()
		bucket, ok := summary.HourlyBreakdown[hour]
		if !ok {
			bucket.Revenue = decimal.Zero
		}
		bucket.Transactions++
		bucket.Revenue = bucket.Revenue.Add(sale.TotalAmount)
		summary.HourlyBreakdown[hour] = bucket
	}

	if summary.TotalTransactions > 0 {
		summary.AvgTransaction = summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(summary.TotalTransactions))).
			Round(2)
	}

	// first seen wins ties
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if len(ranking) > topItemsLimit {
		ranking = ranking[:topItemsLimit]
	}
	if ranking != nil {
		summary.TopItems = ranking
	}

	return summary
}
