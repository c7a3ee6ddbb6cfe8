// Package common defines shared sentinel errors and error types used across
// the QuickNotes client. Callers should match sentinels with errors.Is and
// typed errors with errors.As.
package common

import "errors"

var (
	// ErrAuthRequired means a mutating action was attempted with no session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrBusy means another request is still outstanding; the caller should
	// wait for it to finish rather than queue a second one.
	ErrBusy = errors.New("another request is in progress")

	// ErrNotFound means the referenced note is not in the current list.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a draft that failed input constraints. It carries a
// single human-readable message meant to be shown to the user as-is.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BackendError wraps a failure reported by the data service. The provider
// message is surfaced verbatim, so Error returns the wrapped error's text
// unchanged; Op records which operation failed for logging.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
