// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. EstimatedTimeMin is the estimate frozen at creation; it is
// never recomputed.
type AssignmentDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	OrderID          int64 `gorm:"index;not null"`
	DriverID         int64 `gorm:"index;not null"`
	EstimatedTimeMin int
	AssignedAt       time.Time
	Deleted          bool `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database
// representation. A zero ID is left for the database to assign.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:               aggregate.ID().Int64(),
		OrderID:          aggregate.OrderID().Int64(),
		DriverID:         aggregate.DriverID().Int64(),
		EstimatedTimeMin: aggregate.EstimatedTimeMin(),
		AssignedAt:       aggregate.AssignedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.NewID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, orderID, driverID, dto.EstimatedTimeMin, dto.AssignedAt)
}
