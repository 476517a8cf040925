// Package apperrors defines the error taxonomy of the reconciliation engine.
// Handlers map these to HTTP statuses; the services never leak raw storage
// errors past a PersistenceError wrapper.
package apperrors

import "fmt"

// ValidationError signals malformed or missing required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError signals an unknown movement or payment reference.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ConflictError signals a concurrent link attempt on the same payment, or a
// manual override racing a run.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage-layer failure. Retryable: a batch run
// records the movement as failed and picks it up on the next run.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
