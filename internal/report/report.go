// Package report builds the dashboard summary and the per-employee salary report
// from the stored employees and absences.
package report

import (
	"context"                             // Request scoped cancellation
	"fmt"                                 // Error wrapping
	"payroll_tracker/internal/domain"     // Domain models
	"payroll_tracker/internal/payroll"    // Salary figures
	"payroll_tracker/internal/repository" // Employee and absence storage
	"time"                                // Current month
)

// Period is a month of a year, optionally narrowed to one calendar day
type Period struct {
	Month int
	Year  int
	Day   *int
}

// Row is one employee's line of the salary report
type Row struct {
	ID          uint    `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	GrossSalary float64 `json:"gross_salary"`
	AbsentDays  int     `json:"absent_days"`
	AbsentHours int     `json:"absent_hours"`
	Deduction   float64 `json:"deduction"`
	NetSalary   float64 `json:"net_salary"`
}

// Dashboard summarises the current month. AllTime is summed over every stored
// absence while the deduction and net totals only cover the current month.
type Dashboard struct {
	Month          int            `json:"month"`
	Year           int            `json:"year"`
	EmployeesCount int64          `json:"employees_count"`
	AllTime        payroll.Totals `json:"all_time_absence"`
	TotalDeduction float64        `json:"total_deduction"`
	TotalNetSalary float64        `json:"total_net_salary"`
}

// Service aggregates stored employees and absences into reports
type Service struct {
	employees repository.EmployeeRepository
	absences  repository.AbsenceRepository
	now       func() time.Time
}

// NewService uses the wall clock; see WithClock
func NewService(employees repository.EmployeeRepository, absences repository.AbsenceRepository) *Service {
	return &Service{employees: employees, absences: absences, now: time.Now}
}

// WithClock replaces the clock used to resolve the current month.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Dashboard aggregates every employee's figures for the month the clock is in.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	d := &Dashboard{Month: int(now.Month()), Year: now.Year()}

	count, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	d.EmployeesCount = count

	if d.AllTime, err = s.absences.TotalsAllTime(ctx); err != nil {
		return nil, err
	}

	rows, err := s.Rows(ctx, Period{Month: d.Month, Year: d.Year})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		d.TotalDeduction += r.Deduction
		d.TotalNetSalary += r.NetSalary
	}
	return d, nil
}

// Rows computes one report row per employee. With a day the gross is a single
// day of pay; otherwise it is the monthly base salary.
func (s *Service) Rows(ctx context.Context, p Period) ([]Row, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		row, err := s.row(ctx, e, p)
		if err != nil {
			return nil, fmt.Errorf("report for employee %s: %w", e.EmployeeID, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Service) row(ctx context.Context, e domain.Employee, p Period) (Row, error) {
	id := e.ID
	absences, err := s.absences.Find(ctx, repository.AbsenceFilter{EmployeeID: &id, Month: p.Month, Year: p.Year, Day: p.Day})
	if err != nil {
		return Row{}, err
	}
	f := payroll.Monthly(e, absences)
	if p.Day != nil {
		f = payroll.Daily(e, absences)
	}
	return Row{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		GrossSalary: f.Gross,
		AbsentDays:  f.AbsentDays,
		AbsentHours: f.AbsentHours,
		Deduction:   f.Deduction,
		NetSalary:   f.Net,
	}, nil
}
