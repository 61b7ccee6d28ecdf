package domain

import (
	"errors"
	"fmt"
)

// Service error taxonomy. All of these are returned as values from the
// service layer and mapped to HTTP responses by the API handlers.
var (
	ErrNotAuthenticated = errors.New("not authenticated")                // No user in scope
	ErrWalletNotFound   = errors.New("wallet not found")                 // Covers both nonexistent and foreign wallets
	ErrNotFound         = errors.New("record not found")                 // Covers both nonexistent and foreign records
	ErrPersistence      = errors.New("persistence failed")               // Generic backing-store failure
	ErrInvalidAmount    = errors.New("amount must be a positive number") // Amount/fee <= 0
	ErrInvalidDate      = errors.New("invalid date")                     // Zero or unparseable date
	ErrInvalidType      = errors.New("invalid transaction type")         // Not INCOME or EXPENSE
	ErrEmptyDescription = errors.New("description is required for expenses")
	ErrEmptyProcedure   = errors.New("procedure name is required")
	ErrEmptyWalletName  = errors.New("wallet name is required")
)

// ValidationError wraps a taxonomy error with the offending field name
type ValidationError struct {
	Field string // Field that failed validation
	Err   error  // Underlying taxonomy error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes the underlying taxonomy error to errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// invalid builds a field-level validation error
func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
