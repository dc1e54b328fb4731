// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors, surfaced at the edit boundary.
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be greater than 0")
	ErrAmountTooLarge   = errors.New("amount seems unreasonably large")

	// Storage errors.
	ErrNotFound        = errors.New("not found")
	ErrStorageCorrupt  = errors.New("stored data corrupt")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrInvalidCategory = errors.New("invalid category")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
