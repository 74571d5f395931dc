package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrConflict           = errors.New("concurrent modification conflict")
)

// ValidationError reports malformed input. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation builds a ValidationError for a single field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidStateError reports an operation attempted against an entity whose
// current status forbids it. It matches ErrInvalidState.
type InvalidStateError struct {
	Entity    string
	ID        int64
	Current   string
	Attempted string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d: cannot %s while %s", e.Entity, e.ID, e.Attempted, e.Current)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// InvalidState builds an InvalidStateError with full transition context.
func InvalidState(entity string, id int64, current, attempted string) error {
	return &InvalidStateError{Entity: entity, ID: id, Current: current, Attempted: attempted}
}
