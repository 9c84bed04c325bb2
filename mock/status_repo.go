package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// StatusRepoIface is a mock type for the StatusRepoIface type.
type StatusRepoIface struct {
	mock.Mock
}

// SaveProcessedDate provides a mock function with given fields: ctx, date.
func (_m *StatusRepoIface) SaveProcessedDate(ctx context.Context, date time.Time) error {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for SaveProcessedDate")
	}

	return ret.Error(0)
}

// GetLastProcessedDate provides a mock function with given fields: ctx.
func (_m *StatusRepoIface) GetLastProcessedDate(ctx context.Context) (time.Time, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetLastProcessedDate")
	}

	return ret.Get(0).(time.Time), ret.Error(1)
}
