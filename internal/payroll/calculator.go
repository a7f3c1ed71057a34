// Package payroll holds the salary arithmetic: rates, deductions and net pay.
// Every function is pure; callers select the absences that belong to a period.
package payroll

import "payroll_tracker/internal/domain"

// Totals is the sum of the absence counters of a set of records
type Totals struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Figures is the salary breakdown of one employee for one period
type Figures struct {
	Gross       float64 `json:"gross_salary"`
	AbsentDays  int     `json:"absent_days"`
	AbsentHours int     `json:"absent_hours"`
	Deduction   float64 `json:"deduction"`
	Net         float64 `json:"net_salary"`
}

// DailyRate is the base salary divided by the working days of a month.
// A non-positive divisor yields 0.
func DailyRate(e domain.Employee) float64 {
	if e.WorkingDays <= 0 {
		return 0
	}
	return e.BaseSalary / float64(e.WorkingDays)
}

// HourlyRate is the daily rate divided by the working hours of a day.
func HourlyRate(e domain.Employee) float64 {
	if e.WorkingHours <= 0 {
		return 0
	}
	return DailyRate(e) / e.WorkingHours
}

// Sum adds up the counters of the given absences.
func Sum(absences []domain.Absence) Totals {
	var t Totals
	for _, a := range absences {
		t.Days += a.Days
		t.Hours += a.Hours
		t.Minutes += a.Minutes
	}
	return t
}

// Deduction prices absent days at the daily rate and absent hours at the hourly rate.
// Minutes are recorded but never priced.
func Deduction(e domain.Employee, t Totals) float64 {
	return float64(t.Days)*DailyRate(e) + float64(t.Hours)*HourlyRate(e)
}

// Monthly computes the figures of a month against the full base salary.
func Monthly(e domain.Employee, absences []domain.Absence) Figures {
	return figures(e, e.BaseSalary, Sum(absences))
}

// Daily computes the figures of a single calendar day. The gross is one day of pay
// and the deduction of that day's absences is subtracted from it as is.
func Daily(e domain.Employee, absences []domain.Absence) Figures {
	return figures(e, DailyRate(e), Sum(absences))
}

func figures(e domain.Employee, gross float64, t Totals) Figures {
	deduction := Deduction(e, t)
	return Figures{
		Gross:       gross,
		AbsentDays:  t.Days,
		AbsentHours: t.Hours,
		Deduction:   deduction,
		Net:         gross - deduction,
	}
}
