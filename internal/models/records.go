package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a single POS line. It is never mutated once stored.
type Sale struct {
	ID           int64           `json:"id,omitempty"`
	SaleDate     time.Time       `json:"sale_date"`
	SaleTime     TimeOfDay       `json:"sale_time"`
	ItemName     string          `json:"item_name"`
	ItemCategory string          `json:"item_category,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	EmployeeID   string          `json:"employee_id,omitempty"`
}

// Shift is a worked period of one employee on one date.
type Shift struct {
	ID           int64               `json:"id,omitempty"`
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name"`
	ShiftDate    time.Time           `json:"shift_date"`
	StartTime    TimeOfDay           `json:"start_time"`
	EndTime      TimeOfDay           `json:"end_time"`
	WorkedHours  float64             `json:"worked_hours"`
	HourlyRate   decimal.NullDecimal `json:"hourly_rate"`
	TotalCost    decimal.NullDecimal `json:"total_cost"`
	Position     string              `json:"position,omitempty"`
}
