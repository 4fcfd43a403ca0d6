package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllAssignmentsQueryIsNotConstructed = errors.New(
	"GetAllAssignmentsQuery must be created via NewGetAllAssignmentsQuery constructor",
)

// GetAllAssignmentsQuery retrieves the active assignments together with the
// summary block: totals, average estimated time and a per-driver grouping.
type GetAllAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAssignmentsQuery creates a query to retrieve all active assignments.
func NewGetAllAssignmentsQuery() GetAllAssignmentsQuery {
	return GetAllAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAssignmentsQueryIsNotConstructed if validation fails.
func (q GetAllAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAssignmentsQueryIsNotConstructed)
}

// GetAllAssignmentsQueryAssignment is one assignment row of the read model.
// EstimatedCompletionAt is AssignedAt plus the frozen estimate.
type GetAllAssignmentsQueryAssignment struct {
	ID                    int64
	OrderID               int64
	DriverID              int64
	DriverName            string
	EstimatedTimeMin      int
	AssignedAt            time.Time
	EstimatedCompletionAt time.Time
}

// GetAllAssignmentsQueryDriverGroup is the per-driver slice of the summary.
type GetAllAssignmentsQueryDriverGroup struct {
	DriverID        int64
	DriverName      string
	AssignmentCount int
	TotalTimeMin    int
	TotalTimeHours  float64
}

// GetAllAssignmentsQueryResponse is the assignment list read model.
type GetAllAssignmentsQueryResponse struct {
	Assignments          []GetAllAssignmentsQueryAssignment
	TotalAssignments     int
	AverageEstimatedTime float64
	ByDriver             []GetAllAssignmentsQueryDriverGroup
}
