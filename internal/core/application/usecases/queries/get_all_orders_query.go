package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every active order with its assignment status
// and, when a route exists, the traffic-adjusted estimate.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all active orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryRoute is the route slice of the order read model.
type GetAllOrdersQueryRoute struct {
	ID           int64
	DistanceKm   float64
	TrafficLevel string
	BaseTimeMin  int
}

// GetAllOrdersQueryResponse is the order read model. EstimatedTimeMin is
// traffic-adjusted when a route exists, otherwise the order's own delivery
// time. DriverID and DriverName are set only when Assigned.
type GetAllOrdersQueryResponse struct {
	ID               int64
	ValueRs          float64
	DeliveryTimeMin  int
	EstimatedTimeMin int
	Route            *GetAllOrdersQueryRoute
	Assigned         bool
	DriverID         *int64
	DriverName       *string
}
