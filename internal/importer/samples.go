package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

const (
	SampleSalesFile  = "sample_pos_data.json"
	SampleRosterFile = "sample_roster_data.json"
)

// WriteSamples writes example sales and roster import files into dir, creating it if needed,
// and returns the paths written.
func WriteSamples(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sample directory '%s': %w", dir, err)
	}

	files := []struct {
		name string
		data any
	}{
		{SampleSalesFile, sampleSales()},
		{SampleRosterFile, sampleShifts()},
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dir, file.name)
		payload, err := json.MarshalIndent(file.data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode sample '%s': %w", file.name, err)
		}
		if err = os.WriteFile(path, payload, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write sample '%s': %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func sampleSales() []SaleInput {
	return []SaleInput{
		{
			SaleDate: ref("2024-01-15"), SaleTime: ref("12:30:00"),
			ItemName: ref("Burger Deluxe"), ItemCategory: ref("Main"),
			Quantity: ref(1), UnitPrice: money("18.50"), TotalAmount: money("18.50"),
			EmployeeID: ref("EMP001"),
		},
		{
			SaleDate: ref("2024-01-15"), SaleTime: ref("12:35:00"),
			ItemName: ref("Cappuccino"), ItemCategory: ref("Beverage"),
			Quantity: ref(2), UnitPrice: money("4.50"), TotalAmount: money("9.00"),
			EmployeeID: ref("EMP003"),
		},
	}
}

func sampleShifts() []ShiftInput {
	return []ShiftInput{
		{
			EmployeeID: ref("EMP001"), EmployeeName: ref("Alice Johnson"), ShiftDate: ref("2024-01-15"),
			StartTime: ref("09:00:00"), EndTime: ref("17:00:00"), WorkedHours: ref(8.0),
			HourlyRate: money("28.50"), TotalCost: money("228.00"), Position: ref("Manager"),
		},
		{
			EmployeeID: ref("EMP003"), EmployeeName: ref("Carol Davis"), ShiftDate: ref("2024-01-15"),
			StartTime: ref("11:00:00"), EndTime: ref("19:00:00"), WorkedHours: ref(7.5),
			HourlyRate: money("22.50"), TotalCost: money("168.75"), Position: ref("Server"),
		},
	}
}

func ref[T any](value T) *T {
	return &value
}

func money(value string) *decimal.Decimal {
	amount := decimal.RequireFromString(value)
	return &amount
}
