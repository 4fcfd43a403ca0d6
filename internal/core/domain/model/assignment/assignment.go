// Package assignment contains the Assignment entity: the binding of one
// order to one driver with a time estimate frozen at assignment time.
package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an Assignment that
	// was not created via NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	// ErrEstimateIsInvalid is returned when the frozen estimate is not positive.
	ErrEstimateIsInvalid = errors.New("estimated time must be greater than 0")
)

// Assignment binds one order to one driver. The estimatedTimeMin is computed
// once at assignment time and never re-derived: later route or traffic
// changes do not retroactively alter committed workloads.
type Assignment struct {
	id              kernel.ID
	orderID         kernel.ID
	driverID        kernel.ID
	estimatedTimeMin int
	assignedAt      time.Time
	guard           guard.ConstructorGuard
}

// NewAssignment creates an unpersisted Assignment. The store assigns the
// identifier on first save.
func NewAssignment(orderID, driverID kernel.ID, estimatedTimeMin int, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setDriverID(driverID),
		a.setEstimatedTimeMin(estimatedTimeMin),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id, orderID, driverID kernel.ID,
	estimatedTimeMin int,
	assignedAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDriverID(driverID),
		a.setEstimatedTimeMin(estimatedTimeMin),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment identifier; zero until persisted.
func (a *Assignment) ID() kernel.ID {
	return a.id
}

// OrderID returns the assigned order's identifier.
func (a *Assignment) OrderID() kernel.ID {
	return a.orderID
}

// DriverID returns the assigned driver's identifier.
func (a *Assignment) DriverID() kernel.ID {
	return a.driverID
}

// EstimatedTimeMin returns the frozen delivery estimate in minutes.
func (a *Assignment) EstimatedTimeMin() int {
	return a.estimatedTimeMin
}

// AssignedAt returns when the assignment was made.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// EstimatedCompletionTime returns assignedAt plus the frozen estimate.
func (a *Assignment) EstimatedCompletionTime() time.Time {
	return a.assignedAt.Add(time.Duration(a.estimatedTimeMin) * time.Minute)
}

func (a *Assignment) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

func (a *Assignment) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	a.driverID = driverID
	return nil
}

func (a *Assignment) setEstimatedTimeMin(estimatedTimeMin int) error {
	if estimatedTimeMin <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedTimeMin", ErrEstimateIsInvalid)
	}

	a.estimatedTimeMin = estimatedTimeMin
	return nil
}

func (a *Assignment) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}

	a.assignedAt = assignedAt
	return nil
}
