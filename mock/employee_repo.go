package mocks

import (
	"context"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepoIface is a mock type for the EmployeeRepoIface type.
type EmployeeRepoIface struct {
	mock.Mock
}

// UpsertEmployee provides a mock function with given fields: ctx, employee.
func (_m *EmployeeRepoIface) UpsertEmployee(ctx context.Context, employee models.Employee) error {
	ret := _m.Called(ctx, employee)

	if len(ret) == 0 {
		panic("no return value specified for UpsertEmployee")
	}

	return ret.Error(0)
}

// GetEmployeeByID provides a mock function with given fields: ctx, identifier.
func (_m *EmployeeRepoIface) GetEmployeeByID(ctx context.Context, identifier string) (models.Employee, error) {
	ret := _m.Called(ctx, identifier)

	if len(ret) == 0 {
		panic("no return value specified for GetEmployeeByID")
	}

	return ret.Get(0).(models.Employee), ret.Error(1)
}
