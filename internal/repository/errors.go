package repository

import (
	"errors"                          // Error inspection
	"fmt"                             // Error wrapping
	"payroll_tracker/internal/domain" // Sentinel errors

	"gorm.io/gorm" // GORM ORM library
)

// notFound maps gorm.ErrRecordNotFound to domain.ErrNotFound and wraps everything else
func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return fmt.Errorf("get %s %d: %w", what, id, err)
}
