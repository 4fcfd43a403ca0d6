package queries

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the dashboard summary from the
// active rows. Uses direct SQL for the reads and the stats aggregator for
// the arithmetic, so the HTTP number and the domain number can never drift.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the dashboard query.
// Reads the active orders (with their route, if any), assignments and
// drivers, then folds them through the stats aggregator.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	orders, err := h.loadOrderSnapshots(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	assignments, err := loadAssignmentSnapshots(ctx, h.db)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	drivers, err := h.loadDriverSnapshots(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	stats, err := services.NewStatsAggregator().Dashboard(orders, assignments, drivers)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return GetDashboardStatsQueryResponse{
		TotalOrders:           stats.TotalOrders,
		PendingAssignments:    stats.PendingAssignments,
		AverageDeliveryTime:   stats.AverageDeliveryTime,
		AssignmentRate:        stats.AssignmentRate,
		TotalAssignments:      stats.TotalAssignments,
		TotalDrivers:          stats.TotalDrivers,
		AverageDriverWorkload: stats.AverageDriverWorkload,
	}, nil
}

func (h GetDashboardStatsQueryHandler) loadOrderSnapshots(ctx context.Context) ([]services.OrderSnapshot, error) {
	snapshots := make([]services.OrderSnapshot, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.delivery_time_min,
			r.base_time_min,
			r.traffic_level,
			EXISTS (
				SELECT 1 FROM assignments a
				WHERE a.order_id = o.id AND a.deleted = false
			) AS assigned
		FROM orders o
		LEFT JOIN routes r ON r.id = o.route_id AND r.deleted = false
		WHERE o.deleted = false
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot services.OrderSnapshot
		var baseTimeMin *int
		var trafficLevel *string

		err = rows.Scan(
			&snapshot.ID,
			&snapshot.DeliveryTimeMin,
			&baseTimeMin,
			&trafficLevel,
			&snapshot.Assigned,
		)
		if err != nil {
			return nil, err
		}

		if baseTimeMin != nil && trafficLevel != nil {
			level, parseErr := route.ParseTrafficLevel(*trafficLevel)
			if parseErr != nil {
				return nil, parseErr
			}
			snapshot.RouteBaseTimeMin = baseTimeMin
			snapshot.RouteTrafficLevel = &level
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (h GetDashboardStatsQueryHandler) loadDriverSnapshots(ctx context.Context) ([]services.DriverSnapshot, error) {
	snapshots := make([]services.DriverSnapshot, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shift_hours,
			past_week_hours
		FROM drivers
		WHERE deleted = false
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot services.DriverSnapshot
		var pastWeek string

		if err = rows.Scan(&snapshot.ID, &snapshot.ShiftHours, &pastWeek); err != nil {
			return nil, err
		}

		week, parseErr := driver.ParseWeekHours(pastWeek)
		if parseErr != nil {
			return nil, parseErr
		}
		snapshot.PastWeek = week

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// loadAssignmentSnapshots reads the active assignments joined with their
// drivers. Shared by the dashboard and assignment-list handlers.
func loadAssignmentSnapshots(ctx context.Context, db *gorm.DB) ([]services.AssignmentSnapshot, error) {
	snapshots := make([]services.AssignmentSnapshot, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			a.driver_id,
			d.name,
			d.shift_hours,
			a.estimated_time_min
		FROM assignments a
		JOIN drivers d ON d.id = a.driver_id AND d.deleted = false
		WHERE a.deleted = false
		ORDER BY a.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot services.AssignmentSnapshot

		err = rows.Scan(
			&snapshot.DriverID,
			&snapshot.DriverName,
			&snapshot.DriverShiftHours,
			&snapshot.EstimatedTimeMin,
		)
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
