// Package account owns the single operator account: first-run setup and
// credential checks.
package account

import (
	"context"                             // Request scoped cancellation
	"errors"                              // Error inspection
	"fmt"                                 // Error wrapping
	"payroll_tracker/internal/domain"     // Domain models
	"payroll_tracker/internal/repository" // User storage
	"regexp"                              // Username pattern
	"strings"                             // Case folding

	"golang.org/x/crypto/bcrypt" // Password hashing
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]{3,50}$`)

// ValidateCredentials checks the shape of a username/password pair before setup.
func ValidateCredentials(username, password string) error {
	var errs domain.ValidationErrors
	if !usernamePattern.MatchString(strings.ToLower(username)) {
		errs.Add("username", "must be 3-50 characters of letters, digits, '_', '.' or '-'")
	}
	// bcrypt ignores everything after 72 bytes
	if len(password) < 8 || len(password) > 72 {
		errs.Add("password", "must be 8-72 characters")
	}
	return errs.Err()
}

// Setup creates the administrator account. It only succeeds while no account exists,
// also when several setups race.
func Setup(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}
	count, err := users.Count(ctx) // Fast path; CreateFirst re-checks under lock
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrAlreadyInitialized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{Username: strings.ToLower(username), Password: string(hash)}
	if err := users.CreateFirst(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user matching the credentials, or ErrInvalidCredentials.
func Authenticate(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error) {
	user, err := users.GetByUsername(ctx, strings.ToLower(username))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
