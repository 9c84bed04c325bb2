package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/lib/random"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/roster"
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

type fixture struct {
	generator *roster.Generator
	repo      *mocks.RosterRepoIface
	employees *mocks.EmployeeRepoIface
	metrics   *metrics.Metrics
}

func newFixture(rnd random.Source) fixture {
	fx := fixture{
		repo:      new(mocks.RosterRepoIface),
		employees: new(mocks.EmployeeRepoIface),
		metrics:   metrics.NewMetrics(prometheus.NewRegistry()),
	}
	fx.generator = roster.NewGenerator(sl.Discard(), fx.repo, fx.employees, fx.metrics, rnd)
	return fx
}

func ids(employees []models.Employee) []string {
	result := make([]string, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employee.ID)
	}
	return result
}

func TestWorkingEmployees_Weekday(t *testing.T) {
	t.Parallel()

	// roster order: Manager, Chef, Server, Server, Kitchen Hand, Bartender, Server, Kitchen Hand
	rnd := &sequence{floats: []float64{0.84, 0.69, 0.70, 0.10, 0.49, 0.50, 0.69, 0.50}}
	fx := newFixture(rnd)

	working := fx.generator.WorkingEmployees(monday)

	assert.Equal(t, []string{"EMP001", "EMP002", "EMP004", "EMP005", "EMP007"}, ids(working))
	assert.Empty(t, rnd.floats, "one draw per employee")
}

func TestWorkingEmployees_Weekend(t *testing.T) {
	t.Parallel()

	rnd := &sequence{floats: []float64{0.85, 0.79, 0.80, 0.79, 0.60, 0.79, 0.95, 0.0}}
	fx := newFixture(rnd)

	working := fx.generator.WorkingEmployees(saturday)

	assert.Equal(t, []string{"EMP002", "EMP004", "EMP005", "EMP006", "EMP008"}, ids(working))
}

func TestGenerateShift(t *testing.T) {
	t.Parallel()

	chef := models.Roster()[1]
	// duration 6 + 0.5*2 hours, start hour 9+3, minute index 2
	rnd := &sequence{floats: []float64{0.5}, ints: []int{3, 2}}
	fx := newFixture(rnd)

	shift, err := fx.generator.GenerateShift(chef, monday.Add(20*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "EMP002", shift.EmployeeID)
	assert.Equal(t, "Bob Smith", shift.EmployeeName)
	assert.Equal(t, monday, shift.ShiftDate)
	assert.Equal(t, models.NewTimeOfDay(12, 30, 0), shift.StartTime)
	assert.Equal(t, models.NewTimeOfDay(19, 30, 0), shift.EndTime)
	assert.InDelta(t, 7.0, shift.WorkedHours, 1e-9)
	assert.Equal(t, "175.00", shift.TotalCost.Decimal.StringFixed(2))
	assert.True(t, shift.HourlyRate.Valid)
	assert.Equal(t, "Chef", shift.Position)
}

func TestGenerateShift_WithinPolicy(t *testing.T) {
	t.Parallel()

	fx := newFixture(random.New(99))
	policies := models.PositionPolicies()

	for _, employee := range models.Roster() {
		policy := policies[employee.Position]
		for range 100 {
			shift, err := fx.generator.GenerateShift(employee, monday)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, shift.WorkedHours, policy.MinHours)
			assert.LessOrEqual(t, shift.WorkedHours, policy.MaxHours)
			assert.Contains(t, []int{0, 15, 30, 45}, shift.StartTime.Minute())

			expectedCost := decimal.NewFromFloat(shift.WorkedHours).Mul(employee.HourlyRate)
			assert.True(t, expectedCost.Sub(shift.TotalCost.Decimal).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")))

			elapsed := shift.EndTime.Since(shift.StartTime)
			assert.InDelta(t, shift.WorkedHours, elapsed.Hours(), 1.0/3600)
		}
	}
}

func TestGenerateShift_UnknownPosition(t *testing.T) {
	t.Parallel()

	fx := newFixture(random.New(1))
	sommelier := models.Employee{ID: "EMP009", Name: "Ivy", Position: "Sommelier"}

	_, err := fx.generator.GenerateShift(sommelier, monday)

	require.ErrorIs(t, err, models.ErrValidation)
}

func TestProcessDate(t *testing.T) {
	t.Parallel()

	fx := newFixture(random.New(5))
	fx.repo.On("SaveShift", mock.Anything, mock.AnythingOfType("models.Shift")).Return(int64(0), assert.AnError).Once()
	fx.repo.On("SaveShift", mock.Anything, mock.AnythingOfType("models.Shift")).Return(int64(1), nil)

	stored, err := fx.generator.ProcessDate(context.Background(), saturday)

	require.NoError(t, err)
	assert.Len(t, fx.repo.Calls, stored+1)
	assert.LessOrEqual(t, stored, len(models.Roster())-1)
	assert.InDelta(t, float64(stored), testutil.ToFloat64(fx.metrics.RecordsGenerated.WithLabelValues("shift")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(fx.metrics.RecordsSkipped.WithLabelValues("shift", "storage")), 0)

	for _, call := range fx.repo.Calls {
		shift, ok := call.Arguments.Get(1).(models.Shift)
		require.True(t, ok)
		assert.Equal(t, saturday, shift.ShiftDate)
	}
}

func TestProcessDate_Cancelled(t *testing.T) {
	t.Parallel()

	// the manager always works with this draw
	rnd := &sequence{floats: []float64{0, 1, 1, 1, 1, 1, 1, 1}}
	fx := newFixture(rnd)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stored, err := fx.generator.ProcessDate(ctx, monday)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stored)
	fx.repo.AssertNotCalled(t, "SaveShift", mock.Anything, mock.Anything)
}
