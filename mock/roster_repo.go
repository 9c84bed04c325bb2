package mocks

import (
	"context"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/mock"
)

// RosterRepoIface is a mock type for the RosterRepoIface type.
type RosterRepoIface struct {
	mock.Mock
}

// SaveShift provides a mock function with given fields: ctx, shift.
func (_m *RosterRepoIface) SaveShift(ctx context.Context, shift models.Shift) (int64, error) {
	ret := _m.Called(ctx, shift)

	if len(ret) == 0 {
		panic("no return value specified for SaveShift")
	}

	if rf, ok := ret.Get(0).(func(context.Context, models.Shift) (int64, error)); ok {
		return rf(ctx, shift)
	}

	return ret.Get(0).(int64), ret.Error(1)
}

// GetDailyShifts provides a mock function with given fields: ctx, date.
func (_m *RosterRepoIface) GetDailyShifts(ctx context.Context, date time.Time) ([]models.Shift, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for GetDailyShifts")
	}

	var r0 []models.Shift
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Shift)
	}

	return r0, ret.Error(1)
}

// GetRosterSummary provides a mock function with given fields: ctx, start, end.
func (_m *RosterRepoIface) GetRosterSummary(ctx context.Context, start, end time.Time) (models.RosterAggregate, error) {
	ret := _m.Called(ctx, start, end)

	if len(ret) == 0 {
		panic("no return value specified for GetRosterSummary")
	}

	return ret.Get(0).(models.RosterAggregate), ret.Error(1)
}

// NewRosterRepoIface creates a new instance of RosterRepoIface and registers the expectation check on cleanup.
func NewRosterRepoIface(t interface {
	mock.TestingT
	Cleanup(func())
},
) *RosterRepoIface {
	m := &RosterRepoIface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
