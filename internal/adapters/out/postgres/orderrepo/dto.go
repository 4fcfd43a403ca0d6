// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Rows are soft-deleted: Deleted marks a row as inactive and every active-set
// query filters on it explicitly.
type OrderDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	ValueRs         float64
	DeliveryTimeMin int
	RouteID         *int64 `gorm:"index"`
	Deleted         bool   `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID is left for the database to assign.
func fromDomain(aggregate *order.Order) OrderDTO {
	var routeID *int64
	if id := aggregate.RouteID(); id != nil {
		raw := id.Int64()
		routeID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Int64(),
		ValueRs:         aggregate.ValueRs(),
		DeliveryTimeMin: aggregate.DeliveryTimeMin(),
		RouteID:         routeID,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.ID
	if dto.RouteID != nil {
		rID, routeErr := kernel.NewID(*dto.RouteID)
		if routeErr != nil {
			return nil, routeErr
		}

		routeID = &rID
	}

	return order.RestoreOrder(id, dto.ValueRs, dto.DeliveryTimeMin, routeID)
}
