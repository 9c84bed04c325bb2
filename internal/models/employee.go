package models

import "github.com/shopspring/decimal"

// Position is the role an employee is rostered in.
type Position string

const (
	PositionManager     Position = "Manager"
	PositionChef        Position = "Chef"
	PositionServer      Position = "Server"
	PositionKitchenHand Position = "Kitchen Hand"
	PositionBartender   Position = "Bartender"
)

// Employee represents a rostered staff member.
type Employee struct {
	ID         string          `json:"employee_id"`
	Name       string          `json:"name"`
	Position   Position        `json:"position"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Email      string          `json:"email,omitempty"`
	Active     bool            `json:"active"`
}

// PositionPolicy bounds the shift length for a position. ShiftsPerWeek is informational only,
// attendance is decided per day.
type PositionPolicy struct {
	MinHours      float64 `json:"min_hours"`
	MaxHours      float64 `json:"max_hours"`
	ShiftsPerWeek int     `json:"shifts_per_week"`
}

// Roster returns the static employee roster.
func Roster() []Employee {
	return []Employee{
		{ID: "EMP001", Name: "Alice Johnson", Position: PositionManager, HourlyRate: decimal.RequireFromString("28.50"), Active: true},
		{ID: "EMP002", Name: "Bob Smith", Position: PositionChef, HourlyRate: decimal.RequireFromString("25.00"), Active: true},
		{ID: "EMP003", Name: "Carol Davis", Position: PositionServer, HourlyRate: decimal.RequireFromString("22.50"), Active: true},
		{ID: "EMP004", Name: "David Wilson", Position: PositionServer, HourlyRate: decimal.RequireFromString("22.50"), Active: true},
		{ID: "EMP005", Name: "Emma Brown", Position: PositionKitchenHand, HourlyRate: decimal.RequireFromString("20.00"), Active: true},
		{ID: "EMP006", Name: "Frank Miller", Position: PositionBartender, HourlyRate: decimal.RequireFromString("24.00"), Active: true},
		{ID: "EMP007", Name: "Grace Taylor", Position: PositionServer, HourlyRate: decimal.RequireFromString("22.50"), Active: true},
		{ID: "EMP008", Name: "Henry Lee", Position: PositionKitchenHand, HourlyRate: decimal.RequireFromString("20.00"), Active: true},
	}
}

// PositionPolicies returns the shift policy for every position.
func PositionPolicies() map[Position]PositionPolicy {
	return map[Position]PositionPolicy{
		PositionManager:     {MinHours: 7, MaxHours: 9, ShiftsPerWeek: 5},
		PositionChef:        {MinHours: 6, MaxHours: 8, ShiftsPerWeek: 5},
		PositionServer:      {MinHours: 4, MaxHours: 8, ShiftsPerWeek: 4},
		PositionKitchenHand: {MinHours: 4, MaxHours: 7, ShiftsPerWeek: 4},
		PositionBartender:   {MinHours: 5, MaxHours: 8, ShiftsPerWeek: 4},
	}
}
