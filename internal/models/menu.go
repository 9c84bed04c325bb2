package models

import "github.com/shopspring/decimal"

// MenuItem is an entry of the static menu catalog.
type MenuItem struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Menu returns the static menu catalog in catalog order.
func Menu() []MenuItem {
	return []MenuItem{
		{Name: "Burger Deluxe", Category: "Main", UnitPrice: decimal.RequireFromString("18.50")},
		{Name: "Chicken Caesar Salad", Category: "Salad", UnitPrice: decimal.RequireFromString("16.00")},
		{Name: "Fish & Chips", Category: "Main", UnitPrice: decimal.RequireFromString("22.00")},
		{Name: "Margherita Pizza", Category: "Pizza", UnitPrice: decimal.RequireFromString("20.00")},
		{Name: "Beef Steak", Category: "Main", UnitPrice: decimal.RequireFromString("35.00")},
		{Name: "Pasta Carbonara", Category: "Pasta", UnitPrice: decimal.RequireFromString("19.50")},
		{Name: "Greek Salad", Category: "Salad", UnitPrice: decimal.RequireFromString("14.50")},
		{Name: "Cappuccino", Category: "Beverage", UnitPrice: decimal.RequireFromString("4.50")},
		{Name: "Latte", Category: "Beverage", UnitPrice: decimal.RequireFromString("4.80")},
		{Name: "Fresh Orange Juice", Category: "Beverage", UnitPrice: decimal.RequireFromString("6.50")},
		{Name: "House Wine (Glass)", Category: "Alcohol", UnitPrice: decimal.RequireFromString("9.50")},
		{Name: "Beer (Pint)", Category: "Alcohol", UnitPrice: decimal.RequireFromString("7.50")},
		{Name: "Chocolate Cake", Category: "Dessert", UnitPrice: decimal.RequireFromString("8.50")},
		{Name: "Ice Cream Sundae", Category: "Dessert", UnitPrice: decimal.RequireFromString("7.00")},
	}
}

// BusinessHours is the trading window of the restaurant.
type BusinessHours struct {
	Open     TimeOfDay `json:"open_time"`
	Close    TimeOfDay `json:"close_time"`
	Timezone string    `json:"timezone"`
}

// DefaultBusinessHours returns the standard 09:00-23:00 trading window.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		Open:     NewTimeOfDay(9, 0, 0),
		Close:    NewTimeOfDay(23, 0, 0),
		Timezone: "Australia/Melbourne",
	}
}

// Contains reports whether t falls inside the window, both ends included.
func (b BusinessHours) Contains(t TimeOfDay) bool {
	return b.Open <= t && t <= b.Close
}
