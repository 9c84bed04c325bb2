package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/lib/random"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/sales"
	mocks "github.com/UnknownOlympus/hestia/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	monday   = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
)

// sequence replays a fixed list of draws.
type sequence struct {
	ints   []int
	floats []float64
}

func (s *sequence) IntN(n int) int {
	value := s.ints[0]
	s.ints = s.ints[1:]
	return value % n
}

func (s *sequence) Float64() float64 {
	value := s.floats[0]
	s.floats = s.floats[1:]
	return value
}

func newGenerator(repo *mocks.SalesRepoIface, rnd random.Source) (*sales.Generator, *metrics.Metrics) {
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	return sales.NewGenerator(sl.Discard(), repo, appMetrics, rnd), appMetrics
}

func catalogPrices() map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal)
	for _, item := range models.Menu() {
		prices[item.Name] = item.UnitPrice
	}
	return prices
}

func storedSales(t *testing.T, repo *mocks.SalesRepoIface) []models.Sale {
	t.Helper()
	var result []models.Sale
	for _, call := range repo.Calls {
		if call.Method != "SaveSale" {
			continue
		}
		sale, ok := call.Arguments.Get(1).(models.Sale)
		require.True(t, ok)
		result = append(result, sale)
	}
	return result
}

func TestGenerateTransaction(t *testing.T) {
	t.Parallel()

	// hour 9+3, minute 15, second 45, item 7 (Cappuccino), weight pick 90 (pair), employee 2 (EMP003)
	rnd := &sequence{ints: []int{3, 15, 45, 7, 90, 2}}
	generator, _ := newGenerator(new(mocks.SalesRepoIface), rnd)

	sale := generator.GenerateTransaction(monday.Add(15 * time.Hour))

	assert.Equal(t, monday, sale.SaleDate)
	assert.Equal(t, models.NewTimeOfDay(12, 15, 45), sale.SaleTime)
	assert.Equal(t, "Cappuccino", sale.ItemName)
	assert.Equal(t, "Beverage", sale.ItemCategory)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, "9.00", sale.TotalAmount.StringFixed(2))
	assert.Equal(t, "EMP003", sale.EmployeeID)
}

func TestTransactionCount_Bounds(t *testing.T) {
	t.Parallel()

	generator, _ := newGenerator(new(mocks.SalesRepoIface), random.New(7))

	for range 200 {
		weekday := generator.TransactionCount(monday)
		assert.GreaterOrEqual(t, weekday, 80)
		assert.LessOrEqual(t, weekday, 120)

		weekend := generator.TransactionCount(saturday)
		assert.GreaterOrEqual(t, weekend, 120)
		assert.LessOrEqual(t, weekend, 180)
	}
}

func TestProcessDate_Weekday(t *testing.T) {
	t.Parallel()

	repo := new(mocks.SalesRepoIface)
	repo.On("SaveSale", mock.Anything, mock.AnythingOfType("models.Sale")).Return(int64(1), nil)
	generator, appMetrics := newGenerator(repo, random.New(42))

	stored, err := generator.ProcessDate(context.Background(), monday)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stored, 80)
	assert.LessOrEqual(t, stored, 120)
	assert.InDelta(t, float64(stored), testutil.ToFloat64(appMetrics.RecordsGenerated.WithLabelValues("sale")), 0)

	prices := catalogPrices()
	for _, sale := range storedSales(t, repo) {
		assert.Equal(t, monday, sale.SaleDate)
		assert.Contains(t, []int{1, 2, 3}, sale.Quantity)
		price, ok := prices[sale.ItemName]
		require.True(t, ok, "unknown item %s", sale.ItemName)
		assert.True(t, price.Equal(sale.UnitPrice))
		assert.True(t, sale.UnitPrice.Mul(decimal.NewFromInt(int64(sale.Quantity))).Equal(sale.TotalAmount))
		assert.GreaterOrEqual(t, sale.SaleTime.Hour(), 9)
		assert.LessOrEqual(t, sale.SaleTime.Hour(), 22)
		assert.Regexp(t, `^EMP00[1-8]$`, sale.EmployeeID)
	}
}

func TestProcessDate_Weekend(t *testing.T) {
	t.Parallel()

	repo := new(mocks.SalesRepoIface)
	repo.On("SaveSale", mock.Anything, mock.AnythingOfType("models.Sale")).Return(int64(1), nil)
	generator, _ := newGenerator(repo, random.New(42))

	stored, err := generator.ProcessDate(context.Background(), saturday)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stored, 120)
	assert.LessOrEqual(t, stored, 180)
	repo.AssertNumberOfCalls(t, "SaveSale", stored)
}

func TestProcessDate_StorageFailureIsSkipped(t *testing.T) {
	t.Parallel()

	repo := new(mocks.SalesRepoIface)
	repo.On("SaveSale", mock.Anything, mock.AnythingOfType("models.Sale")).Return(int64(0), assert.AnError).Once()
	repo.On("SaveSale", mock.Anything, mock.AnythingOfType("models.Sale")).Return(int64(1), nil)
	generator, appMetrics := newGenerator(repo, random.New(3))

	stored, err := generator.ProcessDate(context.Background(), monday)

	require.NoError(t, err)
	assert.Len(t, repo.Calls, stored+1)
	assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.RecordsSkipped.WithLabelValues("sale", "storage")), 0)
}

func TestProcessDate_Cancelled(t *testing.T) {
	t.Parallel()

	repo := new(mocks.SalesRepoIface)
	generator, _ := newGenerator(repo, random.New(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stored, err := generator.ProcessDate(ctx, monday)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stored)
	repo.AssertNotCalled(t, "SaveSale", mock.Anything, mock.Anything)
}
