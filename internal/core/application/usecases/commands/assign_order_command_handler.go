package commands

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ErrOrderAlreadyAssigned rejects a manual assignment for an order that
// already has an active assignment.
var ErrOrderAlreadyAssigned = errors.New("order is already assigned")

// AssignOrderResult carries the persisted assignment together with the
// resolved driver, which callers need for the response payload.
type AssignOrderResult struct {
	Assignment *assignment.Assignment
	Driver     *driver.Driver
}

// AssignOrderCommandHandler orchestrates the manual assignment transaction.
// The capacity check and the assignment insert run inside one serializable
// transaction so two racing requests cannot both fit through the same
// remaining capacity.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderAlreadyAssigned):
//	    // conflict, surface as-is
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    // rejection with required/available minutes attached
//	case err != nil:
//	    // infrastructure failure
//	}
type AssignOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for manual assignment.
// Requires an AssignmentUoWFactory for the serializable transaction.
func NewAssignOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one manual assignment.
// Resolves the order and the driver (numeric ID first, exact name second),
// rejects already-assigned orders and capacity shortfalls, freezes the
// traffic-adjusted estimate onto the new assignment and commits.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (AssignOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return AssignOrderResult{}, err
	}

	assignmentRepo := uow.AssignmentRepository()
	_, err = assignmentRepo.GetByOrder(ctx, cmd.OrderID())
	if err == nil {
		return AssignOrderResult{}, ErrOrderAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignOrderResult{}, err
	}

	driverEntity, err := h.resolveDriver(ctx, uow, cmd.DriverRef())
	if err != nil {
		return AssignOrderResult{}, err
	}

	allAssignments, err := assignmentRepo.GetAll(ctx)
	if err != nil {
		return AssignOrderResult{}, err
	}

	calc := services.NewWorkloadCalculator()
	workloadMin := calc.CurrentWorkload(driverEntity.ID(), allAssignments, nil)
	remaining := calc.RemainingCapacity(driverEntity, workloadMin)
	if remaining < float64(orderEntity.DeliveryTimeMin()) {
		return AssignOrderResult{}, errs.NewCapacityExceededError(
			driverEntity.Name(),
			float64(workloadMin),
			remaining,
			orderEntity.DeliveryTimeMin(),
		)
	}

	var orderRoute *route.Route
	if orderEntity.HasRoute() {
		orderRoute, err = uow.RouteRepository().Get(ctx, *orderEntity.RouteID())
		if err != nil {
			return AssignOrderResult{}, err
		}
	}

	estimate, err := services.TrafficAdjustedEstimate(orderEntity, orderRoute)
	if err != nil {
		return AssignOrderResult{}, err
	}

	newAssignment, err := assignment.NewAssignment(
		orderEntity.ID(),
		driverEntity.ID(),
		estimate,
		time.Now().UTC(),
	)
	if err != nil {
		return AssignOrderResult{}, err
	}

	created, err := assignmentRepo.Add(ctx, newAssignment)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	return AssignOrderResult{Assignment: created, Driver: driverEntity}, nil
}

// resolveDriver is the explicit two-branch resolver: a reference that parses
// as a positive integer is looked up by ID, everything else by exact name.
func (h AssignOrderCommandHandler) resolveDriver(
	ctx context.Context,
	uow AssignmentUoW,
	ref string,
) (*driver.Driver, error) {
	if n, parseErr := strconv.ParseInt(ref, 10, 64); parseErr == nil {
		id, err := kernel.NewID(n)
		if err != nil {
			return nil, err
		}
		return uow.DriverRepository().Get(ctx, id)
	}

	return uow.DriverRepository().GetByName(ctx, ref)
}
