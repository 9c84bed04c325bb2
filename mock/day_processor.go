package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// DayProcessor is a mock type for the DayProcessor type.
type DayProcessor struct {
	mock.Mock
}

// ProcessDate provides a mock function with given fields: ctx, date.
func (_m *DayProcessor) ProcessDate(ctx context.Context, date time.Time) (int, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for ProcessDate")
	}

	return ret.Int(0), ret.Error(1)
}
