package routerepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route and returns the aggregate restored with the
// database-assigned identifier.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) (*route.Route, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Get retrieves an active route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted = false", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the active routes matching the given identifiers,
// keyed by identifier. Missing identifiers are absent from the result.
func (r *GormRouteRepository) GetByIDs(ctx context.Context, ids []kernel.ID) (map[int64]*route.Route, error) {
	routes := make(map[int64]*route.Route, len(ids))
	if len(ids) == 0 {
		return routes, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw[i] = id.Int64()
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted = false", raw).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		routeEntity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes[dto.ID] = routeEntity
	}

	return routes, nil
}

// GetAll retrieves every active route, ordered by ascending identifier.
func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("deleted = false").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		routeEntity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, routeEntity)
	}

	return routes, nil
}
