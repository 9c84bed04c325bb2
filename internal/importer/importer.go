// Package importer decodes externally supplied sales and roster files into records that the
// sales and roster services validate and store. Absent fields stay nil so that validation can
// tell a missing value from a zero one.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrFormat = errors.New("unsupported import file format")
	ErrDecode = errors.New("failed to decode import file")
)

// SaleInput is one POS line as supplied by an import file.
type SaleInput struct {
	SaleDate     *string          `json:"sale_date"`
	SaleTime     *string          `json:"sale_time"`
	ItemName     *string          `json:"item_name"`
	ItemCategory *string          `json:"item_category,omitempty"`
	Quantity     *int             `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	EmployeeID   *string          `json:"employee_id,omitempty"`
}

// MealBreak is an unpaid break, Duration is in minutes.
type MealBreak struct {
	Duration *float64 `json:"duration"`
}

// ShiftInput is one roster line as supplied by an import file.
type ShiftInput struct {
	EmployeeID   *string          `json:"employee_id"`
	EmployeeName *string          `json:"employee_name"`
	ShiftDate    *string          `json:"shift_date"`
	StartTime    *string          `json:"start_time"`
	EndTime      *string          `json:"end_time"`
	WorkedHours  *float64         `json:"worked_hours,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	TotalCost    *decimal.Decimal `json:"total_cost,omitempty"`
	Position     *string          `json:"position,omitempty"`
	MealBreaks   []MealBreak      `json:"meal_breaks,omitempty"`
}

// LoadSales reads sale records from a .json, .csv or .html file.
func LoadSales(path string) ([]SaleInput, error) {
	return load(path, saleFromRow)
}

// LoadShifts reads shift records from a .json, .csv or .html file.
func LoadShifts(path string) ([]ShiftInput, error) {
	return load(path, shiftFromRow)
}

func load[T any](path string, fromRow func(row map[string]string) (T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file '%s': %w", path, err)
	}
	defer file.Close()

	var rows []map[string]string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var records []T
		if err = json.NewDecoder(file).Decode(&records); err != nil {
			return nil, fmt.Errorf("%w '%s': %w", ErrDecode, path, err)
		}
		return records, nil
	case ".csv":
		rows, err = readCSV(file)
	case ".html", ".htm":
		rows, err = readHTML(file)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrDecode, path, err)
	}

	records := make([]T, 0, len(rows))
	for idx, row := range rows {
		record, rowErr := fromRow(row)
		if rowErr != nil {
			return nil, fmt.Errorf("%w '%s': row %d: %w", ErrDecode, path, idx+1, rowErr)
		}
		records = append(records, record)
	}

	return records, nil
}
