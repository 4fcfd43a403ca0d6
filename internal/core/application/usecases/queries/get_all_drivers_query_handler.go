package queries

import (
	"context"
	"math"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves the active drivers with their
// committed workload aggregated in SQL and the derived numbers computed by
// the workload calculator.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver list queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all active drivers.
// Results are sorted by driver ID for consistent output.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)
	calc := services.NewWorkloadCalculator()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.shift_hours,
			d.past_week_hours,
			COUNT(a.id),
			COALESCE(SUM(a.estimated_time_min), 0)
		FROM drivers d
		LEFT JOIN assignments a ON a.driver_id = d.id AND a.deleted = false
		WHERE d.deleted = false
		GROUP BY d.id, d.name, d.shift_hours, d.past_week_hours
		ORDER BY d.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverResp GetAllDriversQueryResponse
		var pastWeek string

		err = rows.Scan(
			&driverResp.ID,
			&driverResp.Name,
			&driverResp.ShiftHours,
			&pastWeek,
			&driverResp.AssignmentCount,
			&driverResp.CurrentWorkloadMin,
		)
		if err != nil {
			return nil, err
		}

		week, parseErr := driver.ParseWeekHours(pastWeek)
		if parseErr != nil {
			return nil, parseErr
		}
		driverResp.PastWeekHours = week.Slice()
		driverResp.PastWeekTotal = week.Total()

		driverEntity, restoreErr := restoreDriver(driverResp.ID, driverResp.Name, driverResp.ShiftHours, week)
		if restoreErr != nil {
			return nil, restoreErr
		}

		driverResp.WorkloadHours = calc.WorkloadHours(driverResp.CurrentWorkloadMin)
		driverResp.RemainingHours = math.Round(
			calc.RemainingCapacity(driverEntity, driverResp.CurrentWorkloadMin)/60*100,
		) / 100
		driverResp.WorkloadPercentage = calc.WorkloadPercentage(driverEntity, driverResp.CurrentWorkloadMin)

		drivers = append(drivers, driverResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

func restoreDriver(id int64, name string, shiftHours float64, week driver.WeekHours) (*driver.Driver, error) {
	driverID, err := kernel.NewID(id)
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(driverID, name, shiftHours, week)
}
