package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmployeeID = errors.New("employee ID already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAlreadyInitialized  = errors.New("administrator account already exists")
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every rejected field of a request
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was rejected
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
