// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the dashboard summary block.
// Every execution recomputes the statistics from the current active set;
// nothing is cached between calls.
//
// Example:
//
//	query := NewGetDashboardStatsQuery()
//	handler := NewGetDashboardStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute dashboard stats: %w", err)
//	}
//	fmt.Printf("%d%% of %d orders assigned\n", stats.AssignmentRate, stats.TotalOrders)
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard summary.
// This is a parameterless query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse is the dashboard summary read model.
// AverageDeliveryTime is the mean traffic-adjusted estimate in minutes;
// AverageDriverWorkload is the mean past-week hour total.
type GetDashboardStatsQueryResponse struct {
	TotalOrders           int
	PendingAssignments    int
	AverageDeliveryTime   float64
	AssignmentRate        int
	TotalAssignments      int
	TotalDrivers          int
	AverageDriverWorkload float64
}
