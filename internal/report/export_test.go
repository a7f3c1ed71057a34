package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{EmployeeID: "E-1", Name: "Alice, Jr.", GrossSalary: 2200, AbsentDays: 1, AbsentHours: 4, Deduction: 150, NetSalary: 2050},
		{EmployeeID: "E-2", Name: "Bob", GrossSalary: 100, AbsentDays: 0, AbsentHours: 0, Deduction: 0, NetSalary: 100.005},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Employee ID", "Name", "Gross Salary", "Absent Days", "Absent Hours", "Deduction Amount", "Net Salary"}, records[0])
	assert.Equal(t, []string{"E-1", "Alice, Jr.", "$2200.00", "1", "4", "$150.00", "$2050.00"}, records[1])
	assert.Equal(t, "$0.00", records[2][5])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Employee ID,Name,Gross Salary,Absent Days,Absent Hours,Deduction Amount,Net Salary\n", buf.String())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Salary_Report_March_2024.csv", Filename(Period{Month: 3, Year: 2024}))
	assert.Equal(t, "Salary_Report_March_7_2024.csv", Filename(Period{Month: 3, Year: 2024, Day: day(7)}))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
}

func TestMonthDays(t *testing.T) {
	// February 2024 has 29 days and four Fridays (2, 9, 16, 23)
	all := MonthDays(2024, 2, false)
	assert.Len(t, all, 29)
	assert.Equal(t, 1, all[0])
	assert.Equal(t, 29, all[len(all)-1])

	withoutFridays := MonthDays(2024, 2, true)
	assert.Len(t, withoutFridays, 25)
	assert.NotContains(t, withoutFridays, 2)
	assert.NotContains(t, withoutFridays, 23)
	assert.Contains(t, withoutFridays, 3)
}
