package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage-layer failures. Concurrency conflicts are
// retryable; unavailability is fatal for the request.
var (
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// ConcurrencyConflictError indicates a transaction aborted because of a
// concurrent write. The assignment operations are idempotent against already
// assigned orders, so the caller may retry the whole operation.
type ConcurrencyConflictError struct {
	Op    string
	Cause error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the given operation.
func NewConcurrencyConflictError(op string, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Op: op, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("concurrency conflict: %s (cause: %v)", e.Op, e.Cause)
	}
	return fmt.Sprintf("concurrency conflict: %s", e.Op)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// StorageUnavailableError indicates the store itself failed, as opposed to a
// logic error in the request. Surfaced distinctly so callers can tell
// "try again" from "fix your input".
type StorageUnavailableError struct {
	Op    string
	Cause error
}

// NewStorageUnavailableError creates a StorageUnavailableError for the given operation.
func NewStorageUnavailableError(op string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Op: op, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage unavailable: %s (cause: %v)", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage unavailable: %s", e.Op)
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
