package repository

import (
	"context"                         // Request scoped cancellation
	"errors"                          // Error inspection
	"fmt"                             // Error wrapping
	"payroll_tracker/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// EmployeeRepository stores employees and their pay settings
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id uint) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// GormEmployeeRepository is the GORM backed EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository wraps an open database
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create inserts a new employee. The external employee ID must be unused.
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	db := r.db.WithContext(ctx)
	taken, err := r.employeeIDTaken(db, employee.EmployeeID, 0)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateEmployeeID
	}
	if err := db.Create(employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmployeeID
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByID returns domain.ErrNotFound for unknown IDs
func (r *GormEmployeeRepository) GetByID(ctx context.Context, id uint) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, notFound(err, "employee", id)
	}
	return &employee, nil
}

// List returns every employee ordered by ID
func (r *GormEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := r.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// Update overwrites every column of an existing employee.
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	db := r.db.WithContext(ctx)
	if _, err := r.GetByID(ctx, employee.ID); err != nil {
		return err
	}
	taken, err := r.employeeIDTaken(db, employee.EmployeeID, employee.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateEmployeeID
	}
	err = db.Model(&domain.Employee{ID: employee.ID}).
		Select("EmployeeID", "Name", "BaseSalary", "WorkingDays", "WorkingHours").
		Updates(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmployeeID
	}
	if err != nil {
		return fmt.Errorf("update employee %d: %w", employee.ID, err)
	}
	return nil
}

// Delete removes the employee's absences first, then the employee, in one transaction.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var employee domain.Employee
		if err := tx.First(&employee, id).Error; err != nil {
			return notFound(err, "employee", id)
		}
		if err := tx.Where("employee_id = ?", id).Delete(&domain.Absence{}).Error; err != nil {
			return fmt.Errorf("delete absences of employee %d: %w", id, err)
		}
		if err := tx.Delete(&employee).Error; err != nil {
			return fmt.Errorf("delete employee %d: %w", id, err)
		}
		return nil
	})
}

// Count returns the number of stored employees
func (r *GormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// employeeIDTaken reports whether another row (not exceptID) already uses employeeID
func (r *GormEmployeeRepository) employeeIDTaken(db *gorm.DB, employeeID string, exceptID uint) (bool, error) {
	var count int64
	q := db.Model(&domain.Employee{}).Where("employee_id = ?", employeeID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check employee id %q: %w", employeeID, err)
	}
	return count > 0, nil
}
