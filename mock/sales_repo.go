// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/mock"
)

// SalesRepoIface is a mock type for the SalesRepoIface type.
type SalesRepoIface struct {
	mock.Mock
}

// SaveSale provides a mock function with given fields: ctx, sale.
func (_m *SalesRepoIface) SaveSale(ctx context.Context, sale models.Sale) (int64, error) {
	ret := _m.Called(ctx, sale)

	if len(ret) == 0 {
		panic("no return value specified for SaveSale")
	}

	if rf, ok := ret.Get(0).(func(context.Context, models.Sale) (int64, error)); ok {
		return rf(ctx, sale)
	}

	return ret.Get(0).(int64), ret.Error(1)
}

// GetDailySales provides a mock function with given fields: ctx, date.
func (_m *SalesRepoIface) GetDailySales(ctx context.Context, date time.Time) ([]models.Sale, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for GetDailySales")
	}

	var r0 []models.Sale
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Sale)
	}

	return r0, ret.Error(1)
}

// GetSalesSummary provides a mock function with given fields: ctx, start, end.
func (_m *SalesRepoIface) GetSalesSummary(ctx context.Context, start, end time.Time) (models.SalesAggregate, error) {
	ret := _m.Called(ctx, start, end)

	if len(ret) == 0 {
		panic("no return value specified for GetSalesSummary")
	}

	return ret.Get(0).(models.SalesAggregate), ret.Error(1)
}

// NewSalesRepoIface creates a new instance of SalesRepoIface and registers the expectation check on cleanup.
func NewSalesRepoIface(t interface {
	mock.TestingT
	Cleanup(func())
},
) *SalesRepoIface {
	m := &SalesRepoIface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
