// Package errs provides the standardized error types of the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The taxonomy mirrors how callers are expected to react:
//
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     bad input, fix the request, never retry
//   - ObjectNotFoundError: the referenced entity is absent or soft-deleted
//   - CapacityExceededError: the driver cannot absorb the order; carries the
//     numeric shortfall for diagnostics
//   - ConcurrencyConflictError: a transaction aborted due to a concurrent
//     write; the operation is idempotent and may be retried
//   - StorageUnavailableError: the store itself failed; try again later
package errs
