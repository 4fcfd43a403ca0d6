package postgres

import (
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the engine distinguishes. Serialization failures
// and deadlocks are transient and safe to retry; connection-class failures
// mean storage is unreachable.
const (
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
	sqlstateUniqueViolation      = "23505"
	sqlstateClassConnection      = "08"
)

// classifyError maps a low-level database error onto the engine's error
// taxonomy. Errors that are already classified, and errors with no known
// SQLSTATE, pass through unchanged.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	code := string(pqErr.Code)
	switch {
	case code == sqlstateSerializationFailure || code == sqlstateDeadlockDetected:
		return errs.NewConcurrencyConflictError(op, err)
	case code == sqlstateUniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(pqErr.Constraint, err)
	case len(code) >= 2 && code[:2] == sqlstateClassConnection:
		return errs.NewStorageUnavailableError(op, err)
	default:
		return err
	}
}
