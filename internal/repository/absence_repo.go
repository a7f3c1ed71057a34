package repository

import (
	"context"                          // Request scoped cancellation
	"fmt"                              // Error wrapping
	"payroll_tracker/internal/domain"  // Domain models
	"payroll_tracker/internal/payroll" // Absence totals

	"gorm.io/gorm" // GORM ORM library
)

// AbsenceFilter selects absences of one period. Month and Year always match exactly;
// a nil EmployeeID or Day leaves that column unconstrained.
type AbsenceFilter struct {
	EmployeeID *uint
	Month      int
	Year       int
	Day        *int
}

// AbsenceRepository stores absence records
type AbsenceRepository interface {
	Create(ctx context.Context, absence *domain.Absence) error
	GetByID(ctx context.Context, id uint) (*domain.Absence, error)
	Update(ctx context.Context, absence *domain.Absence) error
	Delete(ctx context.Context, id uint) error
	Find(ctx context.Context, filter AbsenceFilter) ([]domain.Absence, error)
	TotalsAllTime(ctx context.Context) (payroll.Totals, error)
}

// GormAbsenceRepository is the GORM backed AbsenceRepository
type GormAbsenceRepository struct {
	db *gorm.DB
}

// NewGormAbsenceRepository wraps an open database
func NewGormAbsenceRepository(db *gorm.DB) *GormAbsenceRepository {
	return &GormAbsenceRepository{db: db}
}

// Create inserts an absence of an existing employee
func (r *GormAbsenceRepository) Create(ctx context.Context, absence *domain.Absence) error {
	db := r.db.WithContext(ctx)
	if err := r.ensureEmployee(db, absence.EmployeeID); err != nil {
		return err
	}
	if err := db.Create(absence).Error; err != nil {
		return fmt.Errorf("create absence: %w", err)
	}
	return nil
}

// GetByID returns domain.ErrNotFound for unknown IDs
func (r *GormAbsenceRepository) GetByID(ctx context.Context, id uint) (*domain.Absence, error) {
	var absence domain.Absence
	if err := r.db.WithContext(ctx).First(&absence, id).Error; err != nil {
		return nil, notFound(err, "absence", id)
	}
	return &absence, nil
}

// Update overwrites the editable columns; DateRecorded keeps its original value.
func (r *GormAbsenceRepository) Update(ctx context.Context, absence *domain.Absence) error {
	db := r.db.WithContext(ctx)
	if _, err := r.GetByID(ctx, absence.ID); err != nil {
		return err
	}
	if err := r.ensureEmployee(db, absence.EmployeeID); err != nil {
		return err
	}
	err := db.Model(&domain.Absence{ID: absence.ID}).
		Select("EmployeeID", "Day", "Days", "Hours", "Minutes", "Month", "Year", "Reason").
		Updates(absence).Error
	if err != nil {
		return fmt.Errorf("update absence %d: %w", absence.ID, err)
	}
	return nil
}

// Delete removes one absence
func (r *GormAbsenceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Absence{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete absence %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("absence %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Find returns the absences matching filter, ordered by ID
func (r *GormAbsenceRepository) Find(ctx context.Context, filter AbsenceFilter) ([]domain.Absence, error) {
	q := r.db.WithContext(ctx).Where("month = ? AND year = ?", filter.Month, filter.Year)
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Day != nil {
		q = q.Where("day = ?", *filter.Day)
	}
	var absences []domain.Absence
	if err := q.Order("id").Find(&absences).Error; err != nil {
		return nil, fmt.Errorf("find absences: %w", err)
	}
	return absences, nil
}

// TotalsAllTime sums days, hours and minutes over every stored absence, whatever its period.
func (r *GormAbsenceRepository) TotalsAllTime(ctx context.Context) (payroll.Totals, error) {
	var totals payroll.Totals
	err := r.db.WithContext(ctx).Model(&domain.Absence{}).
		Select("COALESCE(SUM(days), 0) AS days, COALESCE(SUM(hours), 0) AS hours, COALESCE(SUM(minutes), 0) AS minutes").
		Scan(&totals).Error
	if err != nil {
		return payroll.Totals{}, fmt.Errorf("sum absences: %w", err)
	}
	return totals, nil
}

// ensureEmployee rejects references to missing employees
func (r *GormAbsenceRepository) ensureEmployee(db *gorm.DB, employeeID uint) error {
	var count int64
	if err := db.Model(&domain.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return fmt.Errorf("check employee %d: %w", employeeID, err)
	}
	if count == 0 {
		return fmt.Errorf("employee %d: %w", employeeID, domain.ErrNotFound)
	}
	return nil
}
