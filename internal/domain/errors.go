package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStore             = errors.New("store failure")
)

// ErrNegativeBalance is returned by the inventory repository when an
// adjustment would drive quantity or weight below zero.
var ErrNegativeBalance = NewValidationError("balance", "must not become negative")

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InsufficientStockError reports a depleting mutation that asked for more
// than the item holds. Available is the balance observed when the mutation
// was rejected and may already be stale.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	Requested Balance
	Available Balance
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %s, available %s",
		e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PermissionError reports an actor that lacks a permission.
type PermissionError struct {
	ActorID    uuid.UUID
	Permission Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("actor %s lacks permission %s", e.ActorID, e.Permission)
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }

// StoreError wraps a persistence failure that has no domain meaning.
// Retryable reports whether resubmitting the same request may succeed.
type StoreError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error { return []error{ErrStore, e.Err} }

// Retryable reports whether the failure is transient.
func (e *StoreError) Retryable() bool { return e.Transient }
