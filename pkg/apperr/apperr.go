package apperr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports an input that violates a precondition. It is always
// raised at the call that detects it; no partial object is left behind.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a schedule collision. Unlike ValidationError it depends
// on the state of a related entity, not just the offending argument.
type ConflictError struct {
	Message       string
	ConflictingID uuid.UUID
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(conflictingID uuid.UUID, format string, args ...interface{}) *ConflictError {
	return &ConflictError{
		Message:       fmt.Sprintf(format, args...),
		ConflictingID: conflictingID,
	}
}

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}
