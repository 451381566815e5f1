package workflow

import (
	"errors"
	"fmt"
)

// ErrOperationFailed is matched by every store failure surfaced by the service
var ErrOperationFailed = errors.New("operation failed")

// ErrMissingFields is returned when a create request leaves a field blank
var ErrMissingFields = errors.New("please fill in all fields")

// OperationError wraps a store failure behind a generic message
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation failed: %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrOperationFailed) match any OperationError
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

func opFailed(op string, err error) error {
	return &OperationError{Op: op, Err: err}
}

// FieldError names the form field that failed validation
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
