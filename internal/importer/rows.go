package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

func readCSV(in io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(in)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for idx, name := range records[0] {
		headers[idx] = normalizeHeader(name)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for idx, value := range record {
			row[headers[idx]] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// readHTML reads the first table of an exported report: a header row of th cells
// followed by rows of td cells.
func readHTML(in io.Reader) ([]map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("no table found in document")
	}

	var headers []string
	var rows []map[string]string

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if headers == nil {
			if ths := tr.Find("th"); ths.Length() > 0 {
				ths.Each(func(_ int, th *goquery.Selection) {
					headers = append(headers, normalizeHeader(th.Text()))
				})
				return
			}
		}

		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		row := make(map[string]string, len(headers))
		cells.Each(func(idx int, td *goquery.Selection) {
			if idx < len(headers) {
				row[headers[idx]] = strings.TrimSpace(td.Text())
			}
		})
		rows = append(rows, row)
	})

	if headers == nil {
		return nil, errors.New("table has no header row")
	}

	return rows, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_")
}

func saleFromRow(row map[string]string) (SaleInput, error) {
	var (
		sale SaleInput
		err  error
	)

	sale.SaleDate = text(row, "sale_date")
	sale.SaleTime = text(row, "sale_time")
	sale.ItemName = text(row, "item_name")
	sale.ItemCategory = text(row, "item_category")
	sale.EmployeeID = text(row, "employee_id")

	if sale.Quantity, err = intCell(row, "quantity"); err != nil {
		return SaleInput{}, err
	}
	if sale.UnitPrice, err = decimalCell(row, "unit_price"); err != nil {
		return SaleInput{}, err
	}
	if sale.TotalAmount, err = decimalCell(row, "total_amount"); err != nil {
		return SaleInput{}, err
	}

	return sale, nil
}

func shiftFromRow(row map[string]string) (ShiftInput, error) {
	var (
		shift ShiftInput
		err   error
	)

	shift.EmployeeID = text(row, "employee_id")
	shift.EmployeeName = text(row, "employee_name")
	shift.ShiftDate = text(row, "shift_date")
	shift.StartTime = text(row, "start_time")
	shift.EndTime = text(row, "end_time")
	shift.Position = text(row, "position")

	if shift.WorkedHours, err = floatCell(row, "worked_hours"); err != nil {
		return ShiftInput{}, err
	}
	if shift.HourlyRate, err = decimalCell(row, "hourly_rate"); err != nil {
		return ShiftInput{}, err
	}
	if shift.TotalCost, err = decimalCell(row, "total_cost"); err != nil {
		return ShiftInput{}, err
	}
	if shift.MealBreaks, err = mealBreaks(row); err != nil {
		return ShiftInput{}, err
	}

	return shift, nil
}

// text returns nil for a missing or blank cell.
func text(row map[string]string, column string) *string {
	value := strings.TrimSpace(row[column])
	if value == "" {
		return nil
	}
	return &value
}

func intCell(row map[string]string, column string) (*int, error) {
	value := text(row, column)
	if value == nil {
		return nil, nil //nolint:nilnil // absent cell
	}
	parsed, err := strconv.Atoi(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %w", column, *value, err)
	}
	return &parsed, nil
}

func floatCell(row map[string]string, column string) (*float64, error) {
	value := text(row, column)
	if value == nil {
		return nil, nil //nolint:nilnil // absent cell
	}
	parsed, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %w", column, *value, err)
	}
	return &parsed, nil
}

func decimalCell(row map[string]string, column string) (*decimal.Decimal, error) {
	value := text(row, column)
	if value == nil {
		return nil, nil //nolint:nilnil // absent cell
	}
	parsed, err := decimal.NewFromString(strings.TrimPrefix(*value, "$"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %w", column, *value, err)
	}
	return &parsed, nil
}

// mealBreaks reads the meal_breaks cell, a ';' separated list of minutes.
func mealBreaks(row map[string]string) ([]MealBreak, error) {
	value := text(row, "meal_breaks")
	if value == nil {
		return nil, nil
	}

	var breaks []MealBreak
	for _, part := range strings.Split(*value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		minutes, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid meal break '%s': %w", part, err)
		}
		breaks = append(breaks, MealBreak{Duration: &minutes})
	}

	return breaks, nil
}
