package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllAssignmentsQueryHandler retrieves the active assignments and builds
// the summary block through the stats aggregator.
type GetAllAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAssignmentsQueryHandler creates a handler for assignment list queries.
// Requires a GORM database connection for query execution.
func NewGetAllAssignmentsQueryHandler(db *gorm.DB) GetAllAssignmentsQueryHandler {
	return GetAllAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active assignments.
// Rows are sorted by assignment ID; the per-driver grouping by driver ID.
func (h GetAllAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAssignmentsQuery,
) (GetAllAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllAssignmentsQueryResponse{}, err
	}

	response := GetAllAssignmentsQueryResponse{
		Assignments: make([]GetAllAssignmentsQueryAssignment, 0),
		ByDriver:    make([]GetAllAssignmentsQueryDriverGroup, 0),
	}
	snapshots := make([]services.AssignmentSnapshot, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			a.driver_id,
			d.name,
			d.shift_hours,
			a.estimated_time_min,
			a.assigned_at
		FROM assignments a
		JOIN drivers d ON d.id = a.driver_id AND d.deleted = false
		WHERE a.deleted = false
		ORDER BY a.id
	`).Rows()
	if err != nil {
		return GetAllAssignmentsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllAssignmentsQueryAssignment
		var shiftHours float64

		err = rows.Scan(
			&row.ID,
			&row.OrderID,
			&row.DriverID,
			&row.DriverName,
			&shiftHours,
			&row.EstimatedTimeMin,
			&row.AssignedAt,
		)
		if err != nil {
			return GetAllAssignmentsQueryResponse{}, err
		}

		row.EstimatedCompletionAt = row.AssignedAt.Add(time.Duration(row.EstimatedTimeMin) * time.Minute)
		response.Assignments = append(response.Assignments, row)

		snapshots = append(snapshots, services.AssignmentSnapshot{
			DriverID:         row.DriverID,
			DriverName:       row.DriverName,
			DriverShiftHours: shiftHours,
			EstimatedTimeMin: row.EstimatedTimeMin,
		})
	}

	if err = rows.Err(); err != nil {
		return GetAllAssignmentsQueryResponse{}, err
	}

	aggregator := services.NewStatsAggregator()
	response.TotalAssignments = len(response.Assignments)
	response.AverageEstimatedTime = aggregator.AverageEstimatedTime(snapshots)
	for _, group := range aggregator.GroupByDriver(snapshots) {
		response.ByDriver = append(response.ByDriver, GetAllAssignmentsQueryDriverGroup{
			DriverID:        group.DriverID,
			DriverName:      group.DriverName,
			AssignmentCount: group.AssignmentCount,
			TotalTimeMin:    group.TotalTimeMin,
			TotalTimeHours:  group.TotalTimeHours,
		})
	}

	return response, nil
}
