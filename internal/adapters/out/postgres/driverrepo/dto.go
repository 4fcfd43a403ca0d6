// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Past-week hours are stored pipe-separated, one value per day.
type DriverDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"uniqueIndex;not null"`
	ShiftHours    float64
	PastWeekHours string
	Deleted       bool `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
// A zero ID is left for the database to assign.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            aggregate.ID().Int64(),
		Name:          aggregate.Name(),
		ShiftHours:    aggregate.ShiftHours(),
		PastWeekHours: aggregate.PastWeek().String(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	week, err := driver.ParseWeekHours(dto.PastWeekHours)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.ShiftHours, week)
}
