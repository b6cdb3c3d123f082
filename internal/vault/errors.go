// Package vault defines the error kinds shared by the vault engines. Callers
// distinguish three failures: a rejected payload (ValidationError), a missing
// record (ErrNotFound), and a record store fault (StoreError).
package vault

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an operation addressed a record id that does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a create or update payload that violates the record
// contract, such as an empty title.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a failure inside the record store. The cause is preserved
// for logging; HTTP handlers surface it as an opaque internal error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
