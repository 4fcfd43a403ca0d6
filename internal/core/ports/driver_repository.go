package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// All read methods exclude soft-deleted rows.
type DriverRepository interface {
	// Add persists a new driver aggregate and returns it with its
	// storage-assigned identifier.
	Add(ctx context.Context, aggregate *driver.Driver) (*driver.Driver, error)

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetByName retrieves a driver aggregate by its exact name.
	// Returns an ObjectNotFoundError when no active driver matches.
	GetByName(ctx context.Context, name string) (*driver.Driver, error)

	// GetAll retrieves every active driver, ordered by ascending identifier.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
