package payroll

import (
	"testing"

	"payroll_tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func standardEmployee() domain.Employee {
	return domain.Employee{EmployeeID: "E-1", Name: "Alice", BaseSalary: 2200, WorkingDays: 22, WorkingHours: 8}
}

func TestRates(t *testing.T) {
	e := standardEmployee()
	assert.InDelta(t, 100.0, DailyRate(e), tolerance)
	assert.InDelta(t, 12.5, HourlyRate(e), tolerance)
}

func TestDailyRateTimesWorkingDaysIsBaseSalary(t *testing.T) {
	employees := []domain.Employee{
		{BaseSalary: 2200, WorkingDays: 22, WorkingHours: 8},
		{BaseSalary: 1234.56, WorkingDays: 21, WorkingHours: 7.5},
		{BaseSalary: 999.99, WorkingDays: 26, WorkingHours: 6},
		{BaseSalary: 0, WorkingDays: 20, WorkingHours: 8},
	}
	for _, e := range employees {
		assert.InDelta(t, e.BaseSalary, DailyRate(e)*float64(e.WorkingDays), 1e-6)
	}
}

func TestRatesGuardNonPositiveDivisors(t *testing.T) {
	assert.Zero(t, DailyRate(domain.Employee{BaseSalary: 1000, WorkingDays: 0, WorkingHours: 8}))
	assert.Zero(t, HourlyRate(domain.Employee{BaseSalary: 1000, WorkingDays: 20, WorkingHours: 0}))
}

func TestMonthlyWithoutAbsences(t *testing.T) {
	f := Monthly(standardEmployee(), nil)
	assert.Equal(t, 0.0, f.Deduction)
	assert.Equal(t, 2200.0, f.Net)
	assert.Equal(t, 2200.0, f.Gross)
}

func TestDeductionIsAdditiveAcrossRecords(t *testing.T) {
	e := standardEmployee()
	f := Monthly(e, []domain.Absence{{Days: 1}, {Hours: 4}})

	assert.Equal(t, 1, f.AbsentDays)
	assert.Equal(t, 4, f.AbsentHours)
	assert.InDelta(t, 1*DailyRate(e)+4*HourlyRate(e), f.Deduction, tolerance)
	assert.InDelta(t, 150.0, f.Deduction, tolerance)
	assert.InDelta(t, 2050.0, f.Net, tolerance)
}

func TestMinutesNeverAffectDeduction(t *testing.T) {
	e := standardEmployee()
	without := Monthly(e, []domain.Absence{{Days: 1, Hours: 2}})
	with := Monthly(e, []domain.Absence{{Days: 1, Hours: 2, Minutes: 59}, {Minutes: 600}})

	assert.Equal(t, without.Deduction, with.Deduction)
	assert.Equal(t, without.Net, with.Net)
	assert.Equal(t, 659, Sum([]domain.Absence{{Minutes: 59}, {Minutes: 600}}).Minutes)
}

func TestDailyUsesOneDayOfPayAsGross(t *testing.T) {
	e := standardEmployee()

	empty := Daily(e, nil)
	assert.InDelta(t, 100.0, empty.Gross, tolerance)
	assert.InDelta(t, 100.0, empty.Net, tolerance)
	assert.Zero(t, empty.Deduction)

	// the deduction is not rescaled to the day, so net can go negative
	f := Daily(e, []domain.Absence{{Days: 2, Hours: 4}})
	assert.InDelta(t, 250.0, f.Deduction, tolerance)
	assert.InDelta(t, -150.0, f.Net, tolerance)
}
