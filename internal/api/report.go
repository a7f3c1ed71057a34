package api

import (
	"bytes"                           // Export buffer
	"net/http"                        // HTTP status codes
	"payroll_tracker/internal/domain" // Validation errors
	"payroll_tracker/internal/report" // Report aggregator
	"strconv"                         // Query parsing
	"time"                            // Clock

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardHandler returns the current month summary
func DashboardHandler(reports *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := reports.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to build dashboard")
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}

// ReportsHandler returns one salary row per employee for a month or a single day
func ReportsHandler(reports *report.Service, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		period, err := parsePeriod(c, now()) // Parse month, year and day
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		rows, err := reports.Rows(c.Request.Context(), period)
		if err != nil {
			respondError(c, err, "Failed to build report")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"rows":       rows,                           // Report rows
			"month":      period.Month,                   // Resolved month
			"month_name": report.MonthName(period.Month), // Month name
			"year":       period.Year,                    // Resolved year
			"day":        period.Day,                     // Resolved day, null for the whole month
		})
	}
}

// ExportHandler streams the salary report as a CSV attachment
func ExportHandler(reports *report.Service, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		period, err := parsePeriod(c, now()) // Parse month, year and day
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		rows, err := reports.Rows(c.Request.Context(), period)
		if err != nil {
			respondError(c, err, "Failed to build report")
			return
		}
		var buf bytes.Buffer // Render fully before sending headers
		if err := report.WriteCSV(&buf, rows); err != nil {
			respondError(c, err, "Failed to export report")
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+report.Filename(period))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	}
}

// CalendarDaysHandler lists the days of a month, without Fridays unless exclude_fridays=false
func CalendarDaysHandler(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		period, err := parsePeriod(c, now()) // Parse month and year
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		excludeFridays, err := strconv.ParseBool(c.DefaultQuery("exclude_fridays", "true"))
		if err != nil {
			respondError(c, domain.ValidationErrors{{Field: "exclude_fridays", Message: "must be a boolean"}}, "Invalid request")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"month":           period.Month,                                                // Resolved month
			"year":            period.Year,                                                 // Resolved year
			"exclude_fridays": excludeFridays,                                              // Applied filter
			"days":            report.MonthDays(period.Year, period.Month, excludeFridays), // Calendar days
		})
	}
}
