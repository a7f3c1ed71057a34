package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"payroll_tracker/internal/db/dbtest"
	"payroll_tracker/internal/domain"
	"payroll_tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

type fixture struct {
	employees *repository.GormEmployeeRepository
	absences  *repository.GormAbsenceRepository
	service   *Service
}

func newFixture(t *testing.T, now time.Time) *fixture {
	gdb := dbtest.New(t)
	f := &fixture{
		employees: repository.NewGormEmployeeRepository(gdb),
		absences:  repository.NewGormAbsenceRepository(gdb),
	}
	f.service = NewService(f.employees, f.absences).WithClock(func() time.Time { return now })
	return f
}

func (f *fixture) employee(t *testing.T, id string, salary float64) *domain.Employee {
	e := &domain.Employee{EmployeeID: id, Name: "Name " + id, BaseSalary: salary, WorkingDays: 22, WorkingHours: 8}
	require.NoError(t, f.employees.Create(context.Background(), e))
	return e
}

func (f *fixture) absence(t *testing.T, a domain.Absence) {
	require.NoError(t, f.absences.Create(context.Background(), &a))
}

func day(v int) *int { return &v }

func TestRowsMonthly(t *testing.T) {
	f := newFixture(t, time.Now())
	alice := f.employee(t, "A", 2200)
	bob := f.employee(t, "B", 4400)
	f.absence(t, domain.Absence{EmployeeID: alice.ID, Day: 3, Days: 1, Month: 5, Year: 2024})
	f.absence(t, domain.Absence{EmployeeID: alice.ID, Day: 4, Hours: 4, Minutes: 45, Month: 5, Year: 2024})
	f.absence(t, domain.Absence{EmployeeID: alice.ID, Day: 4, Days: 5, Month: 6, Year: 2024})

	rows, err := f.service.Rows(context.Background(), Period{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]Row{}
	for _, r := range rows {
		byID[r.EmployeeID] = r
	}
	a := byID["A"]
	assert.Equal(t, 2200.0, a.GrossSalary)
	assert.Equal(t, 1, a.AbsentDays)
	assert.Equal(t, 4, a.AbsentHours)
	assert.InDelta(t, 150.0, a.Deduction, tolerance)
	assert.InDelta(t, 2050.0, a.NetSalary, tolerance)

	b := byID["B"]
	assert.Equal(t, bob.ID, b.ID)
	assert.Zero(t, b.Deduction)
	assert.Equal(t, 4400.0, b.NetSalary)
}

func TestRowsForDayWithoutAbsences(t *testing.T) {
	f := newFixture(t, time.Now())
	e := f.employee(t, "A", 2200)
	f.absence(t, domain.Absence{EmployeeID: e.ID, Day: 3, Days: 1, Month: 5, Year: 2024})

	rows, err := f.service.Rows(context.Background(), Period{Month: 5, Year: 2024, Day: day(4)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Deduction)
	assert.InDelta(t, 100.0, rows[0].GrossSalary, tolerance)
	assert.InDelta(t, 100.0, rows[0].NetSalary, tolerance)
}

func TestRowsForDaySubtractsUnscaledDeduction(t *testing.T) {
	f := newFixture(t, time.Now())
	e := f.employee(t, "A", 2200)
	f.absence(t, domain.Absence{EmployeeID: e.ID, Day: 3, Days: 1, Hours: 2, Month: 5, Year: 2024})
	f.absence(t, domain.Absence{EmployeeID: e.ID, Day: 9, Days: 3, Month: 5, Year: 2024})

	rows, err := f.service.Rows(context.Background(), Period{Month: 5, Year: 2024, Day: day(3)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].AbsentDays)
	assert.Equal(t, 2, rows[0].AbsentHours)
	assert.InDelta(t, 125.0, rows[0].Deduction, tolerance)
	assert.InDelta(t, -25.0, rows[0].NetSalary, tolerance)
}

func TestDashboardUsesDifferentScopes(t *testing.T) {
	now := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	alice := f.employee(t, "A", 2200)
	bob := f.employee(t, "B", 2200)

	// current month
	f.absence(t, domain.Absence{EmployeeID: alice.ID, Day: 2, Days: 1, Minutes: 10, Month: 5, Year: 2024})
	f.absence(t, domain.Absence{EmployeeID: bob.ID, Day: 3, Hours: 4, Minutes: 20, Month: 5, Year: 2024})
	// other periods
	f.absence(t, domain.Absence{EmployeeID: alice.ID, Day: 2, Days: 2, Hours: 1, Minutes: 5, Month: 4, Year: 2024})
	f.absence(t, domain.Absence{EmployeeID: bob.ID, Day: 2, Days: 3, Month: 5, Year: 2023})

	d, err := f.service.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, d.Month)
	assert.Equal(t, 2024, d.Year)
	assert.EqualValues(t, 2, d.EmployeesCount)

	assert.Equal(t, 6, d.AllTime.Days)
	assert.Equal(t, 5, d.AllTime.Hours)
	assert.Equal(t, 35, d.AllTime.Minutes)

	assert.InDelta(t, 150.0, d.TotalDeduction, tolerance)
	assert.InDelta(t, 4250.0, d.TotalNetSalary, tolerance)
}

func TestDashboardEmptyStore(t *testing.T) {
	f := newFixture(t, time.Now())
	d, err := f.service.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.EmployeesCount)
	assert.Zero(t, d.TotalDeduction)
	assert.Zero(t, d.TotalNetSalary)
	assert.Zero(t, d.AllTime.Days)
}

type failingAbsences struct {
	repository.AbsenceRepository
	err error
}

func (f failingAbsences) Find(context.Context, repository.AbsenceFilter) ([]domain.Absence, error) {
	return nil, f.err
}

func TestRowsAbortOnEmployeeFailure(t *testing.T) {
	f := newFixture(t, time.Now())
	f.employee(t, "A", 2200)
	boom := errors.New("store unavailable")

	svc := NewService(f.employees, failingAbsences{err: boom})
	rows, err := svc.Rows(context.Background(), Period{Month: 1, Year: 2024})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rows)
}
