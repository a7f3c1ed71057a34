package api

import (
	"payroll_tracker/internal/domain"     // Domain models
	"payroll_tracker/internal/report"     // Report periods
	"payroll_tracker/internal/repository" // Absence filter
	"strconv"                             // String conversion
	"strings"                             // String manipulation
	"time"                                // Current period defaults

	"github.com/gin-gonic/gin" // Gin web framework
)

// CredentialsRequest is the body of setup and login
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// EmployeeRequest is the body of employee create and update
type EmployeeRequest struct {
	EmployeeID   string   `json:"employee_id" binding:"required,max=50"`               // External identifier
	Name         string   `json:"name" binding:"required,max=100"`                     // Display name
	BaseSalary   *float64 `json:"base_salary" binding:"required,gte=0,lte=1000000000"` // Monthly base salary
	WorkingDays  *int     `json:"working_days" binding:"omitnil,gt=0,max=31"`          // Defaults to 22
	WorkingHours *float64 `json:"working_hours" binding:"omitnil,gt=0,lte=24"`         // Defaults to 8
}

// Employee builds the model from a bound request, applying the calendar defaults
func (r EmployeeRequest) Employee() (domain.Employee, error) {
	var errs domain.ValidationErrors
	e := domain.Employee{
		EmployeeID:   strings.TrimSpace(r.EmployeeID),
		Name:         strings.TrimSpace(r.Name),
		BaseSalary:   *r.BaseSalary,
		WorkingDays:  domain.DefaultWorkingDays,
		WorkingHours: domain.DefaultWorkingHours,
	}
	// Tags accept whitespace-only strings
	if e.EmployeeID == "" {
		errs.Add("employee_id", "is required")
	}
	if e.Name == "" {
		errs.Add("name", "is required")
	}
	if r.WorkingDays != nil {
		e.WorkingDays = *r.WorkingDays
	}
	if r.WorkingHours != nil {
		e.WorkingHours = *r.WorkingHours
	}
	return e, errs.Err()
}

// AbsenceRequest is the body of absence create and update
type AbsenceRequest struct {
	EmployeeID *uint  `json:"employee_id" binding:"required,gt=0"`       // Internal employee ID
	Day        *int   `json:"day" binding:"omitnil,min=1,max=31"`        // Defaults to 1
	Days       *int   `json:"days" binding:"omitnil,min=0,max=31"`       // Defaults to 0
	Hours      *int   `json:"hours" binding:"omitnil,min=0,max=744"`     // Defaults to 0, at most a month of hours
	Minutes    *int   `json:"minutes" binding:"omitnil,min=0,max=59"`    // Defaults to 0
	Month      *int   `json:"month" binding:"required,min=1,max=12"`     // Required
	Year       *int   `json:"year" binding:"required,min=1900,max=9999"` // Required
	Reason     string `json:"reason" binding:"max=200"`                  // Optional
}

// Absence builds the model from a bound request, applying the defaults
func (r AbsenceRequest) Absence() domain.Absence {
	a := domain.Absence{
		EmployeeID: *r.EmployeeID,
		Day:        1,
		Month:      *r.Month,
		Year:       *r.Year,
		Reason:     strings.TrimSpace(r.Reason),
	}
	if r.Day != nil {
		a.Day = *r.Day
	}
	if r.Days != nil {
		a.Days = *r.Days
	}
	if r.Hours != nil {
		a.Hours = *r.Hours
	}
	if r.Minutes != nil {
		a.Minutes = *r.Minutes
	}
	return a
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, domain.ValidationErrors{{Field: name, Message: "must be a positive integer"}}
	}
	return uint(v), nil
}

// parsePeriod reads month, year and day query parameters. Month and year default to
// the current period. A missing day, or day=0, means the whole month.
func parsePeriod(c *gin.Context, now time.Time) (report.Period, error) {
	var errs domain.ValidationErrors
	p := report.Period{Month: int(now.Month()), Year: now.Year()}
	if v, ok := queryInt(c, "month", &errs); ok {
		if v < 1 || v > 12 {
			errs.Add("month", "must be between 1 and 12")
		}
		p.Month = v
	}
	if v, ok := queryInt(c, "year", &errs); ok {
		if v < 1900 || v > 9999 {
			errs.Add("year", "must be between 1900 and 9999")
		}
		p.Year = v
	}
	if v, ok := queryInt(c, "day", &errs); ok {
		switch {
		case v < 0 || v > 31:
			errs.Add("day", "must be between 1 and 31")
		case v > 0:
			p.Day = &v
		}
	}
	return p, errs.Err()
}

// absenceFilter extends the period with an optional employee_id query parameter
func absenceFilter(c *gin.Context, now time.Time) (repository.AbsenceFilter, error) {
	p, err := parsePeriod(c, now)
	var errs domain.ValidationErrors
	if err != nil {
		errs = err.(domain.ValidationErrors)
	}
	f := repository.AbsenceFilter{Month: p.Month, Year: p.Year, Day: p.Day}
	if v, ok := queryInt(c, "employee_id", &errs); ok {
		if v <= 0 {
			errs.Add("employee_id", "must be a positive integer")
		}
		id := uint(v)
		f.EmployeeID = &id
	}
	return f, errs.Err()
}

func queryInt(c *gin.Context, name string, errs *domain.ValidationErrors) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, "must be an integer")
		return 0, false
	}
	return v, true
}
