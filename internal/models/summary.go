package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesAggregate summarises sales over an inclusive date range.
type SalesAggregate struct {
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	TotalTransactions int64           `json:"total_transactions"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgTransaction    decimal.Decimal `json:"avg_transaction"`
	ActiveDays        int64           `json:"active_days"`
	ActiveEmployees   int64           `json:"active_employees"`
}

// RosterAggregate summarises shifts over an inclusive date range.
type RosterAggregate struct {
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	TotalShifts      int64           `json:"total_shifts"`
	TotalHours       float64         `json:"total_hours"`
	AvgHoursPerShift float64         `json:"avg_hours_per_shift"`
	TotalLaborCost   decimal.Decimal `json:"total_labor_cost"`
	ActiveDays       int64           `json:"active_days"`
	ActiveEmployees  int64           `json:"active_employees"`
}

// ItemQuantity is one entry of a best-sellers ranking.
type ItemQuantity struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// HourlySales holds the sales made within one hour of the day.
type HourlySales struct {
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DailySalesSummary is the per-day sales view.
type DailySalesSummary struct {
	Date              string              `json:"date"`
	TotalTransactions int                 `json:"total_transactions"`
	TotalRevenue      decimal.Decimal     `json:"total_revenue"`
	ItemsSold         int                 `json:"items_sold"`
	AvgTransaction    decimal.Decimal     `json:"avg_transaction"`
	TopItems          []ItemQuantity      `json:"top_items"`
	HourlyBreakdown   map[int]HourlySales `json:"hourly_breakdown"`
}

// PositionStats holds the shifts worked in one position.
type PositionStats struct {
	Shifts int             `json:"shifts"`
	Hours  float64         `json:"hours"`
	Cost   decimal.Decimal `json:"cost"`
}

// DailyRosterSummary is the per-day roster view.
type DailyRosterSummary struct {
	Date              string                   `json:"date"`
	TotalShifts       int                      `json:"total_shifts"`
	TotalHours        float64                  `json:"total_hours"`
	TotalCost         decimal.Decimal          `json:"total_cost"`
	EmployeesWorking  int                      `json:"employees_working"`
	AvgHoursPerShift  float64                  `json:"avg_hours_per_shift"`
	PositionBreakdown map[string]PositionStats `json:"position_breakdown"`
}

// Report is the periodic summary document.
type Report struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	Restaurant    string          `json:"restaurant"`
	PeriodDays    int             `json:"period_days"`
	SalesSummary  SalesAggregate  `json:"sales_summary"`
	RosterSummary RosterAggregate `json:"roster_summary"`
}
