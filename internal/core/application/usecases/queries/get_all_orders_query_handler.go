package queries

import (
	"context"

	"dispatch/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the active orders with their route and
// assignment context in one round trip.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.value_rs,
			o.delivery_time_min,
			r.id,
			r.distance_km,
			r.traffic_level,
			r.base_time_min,
			a.driver_id,
			d.name
		FROM orders o
		LEFT JOIN routes r ON r.id = o.route_id AND r.deleted = false
		LEFT JOIN assignments a ON a.order_id = o.id AND a.deleted = false
		LEFT JOIN drivers d ON d.id = a.driver_id AND d.deleted = false
		WHERE o.deleted = false
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var routeID *int64
		var distanceKm *float64
		var trafficLevel *string
		var baseTimeMin *int

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.ValueRs,
			&orderResp.DeliveryTimeMin,
			&routeID,
			&distanceKm,
			&trafficLevel,
			&baseTimeMin,
			&orderResp.DriverID,
			&orderResp.DriverName,
		)
		if err != nil {
			return nil, err
		}

		orderResp.Assigned = orderResp.DriverID != nil
		orderResp.EstimatedTimeMin = orderResp.DeliveryTimeMin

		if routeID != nil {
			level, parseErr := route.ParseTrafficLevel(*trafficLevel)
			if parseErr != nil {
				return nil, parseErr
			}

			adjusted, estErr := route.EstimateTime(*baseTimeMin, level)
			if estErr != nil {
				return nil, estErr
			}

			orderResp.Route = &GetAllOrdersQueryRoute{
				ID:           *routeID,
				DistanceKm:   *distanceKm,
				TrafficLevel: level.String(),
				BaseTimeMin:  *baseTimeMin,
			}
			orderResp.EstimatedTimeMin = adjusted
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
