package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoText             = NewValidationError("no text provided")
	ErrInvalidRequestBody = NewValidationError("invalid request body")
)

// ValidationError reports a malformed or incomplete client request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// InternalError wraps a cache or classifier failure. It is never cached and
// never retried.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

func IsInternalError(err error) bool {
	if err == nil {
		return false
	}
	var internalError *InternalError
	return errors.As(err, &internalError)
}
