package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// All read methods exclude soft-deleted rows.
type RouteRepository interface {
	// Add persists a new route aggregate and returns it with its
	// storage-assigned identifier.
	Add(ctx context.Context, aggregate *route.Route) (*route.Route, error)

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*route.Route, error)

	// GetByIDs retrieves the active routes matching the given identifiers,
	// keyed by identifier. Missing identifiers are simply absent from the
	// result, not an error.
	GetByIDs(ctx context.Context, ids []kernel.ID) (map[int64]*route.Route, error)

	// GetAll retrieves every active route, ordered by ascending identifier.
	GetAll(ctx context.Context) ([]*route.Route, error)
}
