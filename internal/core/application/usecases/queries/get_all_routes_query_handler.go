package queries

import (
	"context"

	"dispatch/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// GetAllRoutesQueryHandler retrieves the active routes with their order
// counts aggregated in SQL.
type GetAllRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRoutesQueryHandler creates a handler for route list queries.
// Requires a GORM database connection for query execution.
func NewGetAllRoutesQueryHandler(db *gorm.DB) GetAllRoutesQueryHandler {
	return GetAllRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active routes.
// Results are sorted by route ID for consistent output.
func (h GetAllRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetAllRoutesQuery,
) ([]GetAllRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetAllRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.distance_km,
			r.traffic_level,
			r.base_time_min,
			COUNT(o.id)
		FROM routes r
		LEFT JOIN orders o ON o.route_id = r.id AND o.deleted = false
		WHERE r.deleted = false
		GROUP BY r.id, r.distance_km, r.traffic_level, r.base_time_min
		ORDER BY r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var routeResp GetAllRoutesQueryResponse
		var trafficLevel string

		err = rows.Scan(
			&routeResp.ID,
			&routeResp.DistanceKm,
			&trafficLevel,
			&routeResp.BaseTimeMin,
			&routeResp.ActiveOrderCount,
		)
		if err != nil {
			return nil, err
		}

		level, parseErr := route.ParseTrafficLevel(trafficLevel)
		if parseErr != nil {
			return nil, parseErr
		}

		adjusted, estErr := route.EstimateTime(routeResp.BaseTimeMin, level)
		if estErr != nil {
			return nil, estErr
		}

		routeResp.TrafficLevel = level.String()
		routeResp.Multiplier = level.Multiplier()
		routeResp.EstimatedTimeMin = adjusted

		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
