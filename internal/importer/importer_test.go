package importer_test

import (
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/hestia/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, name)
	filet.File(t, path, content)
	return path
}

func TestLoadSales_JSON(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "sales.json", `[
		{"sale_date": "2024-01-15", "sale_time": "12:30:00", "item_name": "Latte", "quantity": 2, "unit_price": 4.80},
		{"sale_date": "2024-01-15", "sale_time": "13:00:00", "item_name": "Greek Salad", "unit_price": "14.50", "total_amount": 14.5}
	]`)

	sales, err := importer.LoadSales(path)

	require.NoError(t, err)
	require.Len(t, sales, 2)
	require.NotNil(t, sales[0].Quantity)
	assert.Equal(t, 2, *sales[0].Quantity)
	assert.Equal(t, "4.8", sales[0].UnitPrice.String())
	assert.Nil(t, sales[0].TotalAmount)
	assert.Nil(t, sales[1].Quantity)
	assert.Equal(t, "14.5", sales[1].TotalAmount.String())
}

func TestLoadSales_CSV(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "sales.csv", "Sale Date,Sale Time,Item Name,Item Category,Quantity,Unit Price,Total Amount,Employee ID\n"+
		"2024-01-15,12:30:00,Burger Deluxe,Main,1,$18.50,,EMP001\n"+
		"2024-01-15,12:35:00,Cappuccino,,2,4.50,9.00,\n")

	sales, err := importer.LoadSales(path)

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Burger Deluxe", *sales[0].ItemName)
	assert.Equal(t, "18.5", sales[0].UnitPrice.String())
	assert.Nil(t, sales[0].TotalAmount)
	assert.Equal(t, "EMP001", *sales[0].EmployeeID)
	assert.Nil(t, sales[1].ItemCategory)
	assert.Nil(t, sales[1].EmployeeID)
	assert.Equal(t, 2, *sales[1].Quantity)
}

func TestLoadSales_CSVBadNumber(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "sales.csv", "sale_date,sale_time,item_name,quantity,unit_price\n"+
		"2024-01-15,12:30:00,Latte,two,4.80\n")

	_, err := importer.LoadSales(path)

	require.ErrorIs(t, err, importer.ErrDecode)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadShifts_HTML(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "roster.html", `<html><body>
		<table>
			<tr><th>Employee ID</th><th>Employee Name</th><th>Shift Date</th><th>Start Time</th><th>End Time</th><th>Hourly Rate</th><th>Meal Breaks</th></tr>
			<tr><td>EMP002</td><td>Bob Smith</td><td>2024-01-15</td><td>09:00:00</td><td>17:30:00</td><td>25.00</td><td>30</td></tr>
			<tr><td>EMP006</td><td>Frank Miller</td><td>2024-01-15</td><td>22:00:00</td><td>02:00:00</td><td></td><td>10; 5</td></tr>
		</table>
	</body></html>`)

	shifts, err := importer.LoadShifts(path)

	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "Bob Smith", *shifts[0].EmployeeName)
	assert.Equal(t, "17:30:00", *shifts[0].EndTime)
	assert.Equal(t, "25", shifts[0].HourlyRate.String())
	require.Len(t, shifts[0].MealBreaks, 1)
	assert.InDelta(t, 30.0, *shifts[0].MealBreaks[0].Duration, 1e-9)
	assert.Nil(t, shifts[0].WorkedHours)
	assert.Nil(t, shifts[1].HourlyRate)
	require.Len(t, shifts[1].MealBreaks, 2)
	assert.InDelta(t, 5.0, *shifts[1].MealBreaks[1].Duration, 1e-9)
}

func TestLoadShifts_HTMLWithoutTable(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "roster.htm", `<html><body><p>nothing here</p></body></html>`)

	_, err := importer.LoadShifts(path)

	require.ErrorIs(t, err, importer.ErrDecode)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeFile(t, "roster.xlsx", "binary")

	_, err := importer.LoadShifts(path)

	require.ErrorIs(t, err, importer.ErrFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := importer.LoadSales(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open import file")
}

func TestWriteSamples(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "samples")

	paths, err := importer.WriteSamples(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	sales, err := importer.LoadSales(filepath.Join(dir, importer.SampleSalesFile))
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Cappuccino", *sales[1].ItemName)
	assert.Equal(t, "9", sales[1].TotalAmount.String())

	shifts, err := importer.LoadShifts(filepath.Join(dir, importer.SampleRosterFile))
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.InDelta(t, 7.5, *shifts[1].WorkedHours, 1e-9)
	assert.Equal(t, "168.75", shifts[1].TotalCost.String())
}
