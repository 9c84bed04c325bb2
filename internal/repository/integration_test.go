//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("hestia_test"),
		tcpostgres.WithUsername("hestia"),
		tcpostgres.WithPassword("hestia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, repository.Migrate(pool, "../../migrations"))

	return pool
}

func TestRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	pool := setupPostgres(t, ctx)
	appMetrics := newTestMetrics()

	salesRepo := repository.NewSalesRepository(pool, appMetrics)
	rosterRepo := repository.NewRosterRepository(pool, appMetrics)
	employeeRepo := repository.NewEmployeeRepository(pool, appMetrics)
	statusRepo := repository.NewStatusRepository(pool, appMetrics)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sales round trip", func(t *testing.T) {
		late := models.Sale{
			SaleDate: day, SaleTime: models.NewTimeOfDay(19, 5, 0), ItemName: "Fish & Chips",
			ItemCategory: "Main", Quantity: 2, UnitPrice: decimal.RequireFromString("18.50"),
			TotalAmount: decimal.RequireFromString("37.00"), EmployeeID: "EMP003",
		}
		early := models.Sale{
			SaleDate: day, SaleTime: models.NewTimeOfDay(12, 30, 15), ItemName: "Soft Drink",
			Quantity: 1, UnitPrice: decimal.RequireFromString("4.00"), TotalAmount: decimal.RequireFromString("4.00"),
		}

		lateID, err := salesRepo.SaveSale(ctx, late)
		require.NoError(t, err)
		earlyID, err := salesRepo.SaveSale(ctx, early)
		require.NoError(t, err)
		assert.Greater(t, earlyID, lateID)

		stored, err := salesRepo.GetDailySales(ctx, day)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, "Soft Drink", stored[0].ItemName)
		assert.Equal(t, models.NewTimeOfDay(12, 30, 15), stored[0].SaleTime)
		assert.Empty(t, stored[0].EmployeeID)
		assert.True(t, stored[1].TotalAmount.Equal(decimal.RequireFromString("37.00")))

		summary, err := salesRepo.GetSalesSummary(ctx, day.AddDate(0, 0, -6), day)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.TotalTransactions)
		assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("41.00")))
		assert.True(t, summary.AvgTransaction.Equal(decimal.RequireFromString("20.50")))
		assert.Equal(t, int64(1), summary.ActiveDays)
		assert.Equal(t, int64(1), summary.ActiveEmployees)

		empty, err := salesRepo.GetSalesSummary(ctx, day.AddDate(1, 0, 0), day.AddDate(1, 0, 6))
		require.NoError(t, err)
		assert.Zero(t, empty.TotalTransactions)
		assert.True(t, empty.TotalRevenue.IsZero())
	})

	t.Run("roster round trip", func(t *testing.T) {
		shift := models.Shift{
			EmployeeID: "EMP002", EmployeeName: "Bob Smith", ShiftDate: day,
			StartTime: models.NewTimeOfDay(9, 0, 0), EndTime: models.NewTimeOfDay(17, 30, 0),
			WorkedHours: 8.5,
			HourlyRate:  decimal.NewNullDecimal(decimal.RequireFromString("25.00")),
			TotalCost:   decimal.NewNullDecimal(decimal.RequireFromString("212.50")),
			Position:    "Chef",
		}
		_, err := rosterRepo.SaveShift(ctx, shift)
		require.NoError(t, err)

		shifts, err := rosterRepo.GetDailyShifts(ctx, day)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.InDelta(t, 8.5, shifts[0].WorkedHours, 0.001)
		assert.Equal(t, models.NewTimeOfDay(17, 30, 0), shifts[0].EndTime)
		assert.True(t, shifts[0].TotalCost.Valid)

		summary, err := rosterRepo.GetRosterSummary(ctx, day, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.TotalShifts)
		assert.InDelta(t, 8.5, summary.TotalHours, 0.001)
		assert.True(t, summary.TotalLaborCost.Equal(decimal.RequireFromString("212.50")))
	})

	t.Run("employee upsert", func(t *testing.T) {
		employee := models.Roster()[0]
		employee.Email = "alice@example.com"
		require.NoError(t, employeeRepo.UpsertEmployee(ctx, employee))

		employee.HourlyRate = decimal.RequireFromString("30.00")
		require.NoError(t, employeeRepo.UpsertEmployee(ctx, employee))

		stored, err := employeeRepo.GetEmployeeByID(ctx, employee.ID)
		require.NoError(t, err)
		assert.Equal(t, employee.Name, stored.Name)
		assert.Equal(t, models.PositionManager, stored.Position)
		assert.True(t, stored.HourlyRate.Equal(decimal.RequireFromString("30.00")))

		_, err = employeeRepo.GetEmployeeByID(ctx, "EMP999")
		require.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("generator status", func(t *testing.T) {
		_, err := statusRepo.GetLastProcessedDate(ctx)
		require.ErrorIs(t, err, sql.ErrNoRows)

		require.NoError(t, statusRepo.SaveProcessedDate(ctx, day))
		require.NoError(t, statusRepo.SaveProcessedDate(ctx, day.AddDate(0, 0, 1)))

		last, err := statusRepo.GetLastProcessedDate(ctx)
		require.NoError(t, err)
		assert.True(t, last.Equal(day.AddDate(0, 0, 1)))
	})
}
