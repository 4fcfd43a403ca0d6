package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every active driver with a workload
// breakdown derived from their active assignments.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all active drivers.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDriversQueryIsNotConstructed if validation fails.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is the driver read model with the workload
// breakdown the drivers view renders: committed minutes, the same in hours,
// remaining shift hours and the share of the shift already committed.
type GetAllDriversQueryResponse struct {
	ID                 int64
	Name               string
	ShiftHours         float64
	PastWeekHours      []float64
	PastWeekTotal      float64
	AssignmentCount    int
	CurrentWorkloadMin int
	WorkloadHours      float64
	RemainingHours     float64
	WorkloadPercentage int
}
