package report

import (
	"encoding/csv" // CSV encoding
	"fmt"          // Currency formatting
	"io"           // Output stream
	"strconv"      // Integer formatting
	"time"         // Month names
)

// Header is the first line of every exported report
var Header = []string{"Employee ID", "Name", "Gross Salary", "Absent Days", "Absent Hours", "Deduction Amount", "Net Salary"}

// WriteCSV writes the header and one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.EmployeeID,
			r.Name,
			money(r.GrossSalary),
			strconv.Itoa(r.AbsentDays),
			strconv.Itoa(r.AbsentHours),
			money(r.Deduction),
			money(r.NetSalary),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", r.EmployeeID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename is Salary_Report_<Month>[_<Day>]_<Year>.csv
func Filename(p Period) string {
	if p.Day != nil {
		return fmt.Sprintf("Salary_Report_%s_%d_%d.csv", MonthName(p.Month), *p.Day, p.Year)
	}
	return fmt.Sprintf("Salary_Report_%s_%d.csv", MonthName(p.Month), p.Year)
}

// MonthName returns the English month name, or "" outside 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
