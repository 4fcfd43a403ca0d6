package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// When the command carries a route, the route is created first and the order
// is linked to it, all inside one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(850, 45, nil, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created carries the storage-assigned identifier
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// order. A requested route gets its base time from the distance at the
// average city speed before the order is linked to it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var routeID *kernel.ID
	if cmd.HasRoute() {
		baseTime := route.BaseTimeForDistance(cmd.DistanceKm())
		newRoute, err := route.NewRoute(cmd.DistanceKm(), cmd.TrafficLevel(), baseTime)
		if err != nil {
			return nil, err
		}

		persisted, err := uow.RouteRepository().Add(ctx, newRoute)
		if err != nil {
			return nil, err
		}

		id := persisted.ID()
		routeID = &id
	}

	newOrder, err := order.NewOrder(cmd.ValueRs(), cmd.DeliveryTimeMin(), routeID)
	if err != nil {
		return nil, err
	}

	created, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
