// Package routerepo provides data transfer objects and mapping functions for route persistence.
package routerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

// RouteDTO represents the database structure for persisting route aggregates.
// The traffic level is stored as its canonical string (LOW, MEDIUM, HIGH).
type RouteDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	DistanceKm   float64
	TrafficLevel string `gorm:"not null"`
	BaseTimeMin  int
	Deleted      bool `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
// A zero ID is left for the database to assign.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:           aggregate.ID().Int64(),
		DistanceKm:   aggregate.DistanceKm(),
		TrafficLevel: aggregate.TrafficLevel().String(),
		BaseTimeMin:  aggregate.BaseTimeMin(),
	}
}

// toDomain converts a database DTO to a route domain aggregate using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	level, err := route.ParseTrafficLevel(dto.TrafficLevel)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.DistanceKm, level, dto.BaseTimeMin)
}
