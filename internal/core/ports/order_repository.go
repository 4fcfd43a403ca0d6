// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All read methods exclude soft-deleted rows.
type OrderRepository interface {
	// Add persists a new order aggregate and returns it with its
	// storage-assigned identifier.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllUnassigned retrieves every active order that has no active
	// assignment, ordered by ascending identifier.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every active order, ordered by ascending identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
