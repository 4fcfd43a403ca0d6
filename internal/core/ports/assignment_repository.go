package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates. All read methods exclude soft-deleted rows.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate and returns it with its
	// storage-assigned identifier.
	Add(ctx context.Context, aggregate *assignment.Assignment) (*assignment.Assignment, error)

	// GetByOrder retrieves the active assignment for an order, or an
	// ObjectNotFoundError when the order is unassigned.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*assignment.Assignment, error)

	// GetAll retrieves every active assignment, ordered by ascending
	// identifier.
	GetAll(ctx context.Context) ([]*assignment.Assignment, error)
}
