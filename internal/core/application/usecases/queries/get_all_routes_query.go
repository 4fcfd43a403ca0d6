package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllRoutesQueryIsNotConstructed = errors.New(
	"GetAllRoutesQuery must be created via NewGetAllRoutesQuery constructor",
)

// GetAllRoutesQuery retrieves every active route with its traffic-adjusted
// estimate and the number of active orders travelling it.
type GetAllRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRoutesQuery creates a query to retrieve all active routes.
func NewGetAllRoutesQuery() GetAllRoutesQuery {
	return GetAllRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRoutesQueryIsNotConstructed if validation fails.
func (q GetAllRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRoutesQueryIsNotConstructed)
}

// GetAllRoutesQueryResponse is the route read model.
type GetAllRoutesQueryResponse struct {
	ID               int64
	DistanceKm       float64
	TrafficLevel     string
	Multiplier       float64
	BaseTimeMin      int
	EstimatedTimeMin int
	ActiveOrderCount int
}
