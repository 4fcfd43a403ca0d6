package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderValueIsInvalid   = errors.New("order value must be greater than 0")
	ErrDeliveryTimeIsInvalid = errors.New("delivery time must be greater than 0")
	ErrRouteSpecIsIncomplete = errors.New("route distance and traffic level must be provided together")
	ErrDistanceIsInvalid     = errors.New("route distance must be greater than 0")
)

// CreateOrderCommand represents a request to register a new delivery order,
// optionally together with the route it will travel. When a route is
// requested its base time is derived from the distance at the average city
// speed.
//
// Example:
//
//	level := route.TrafficHigh
//	distance := 12.5
//	cmd, err := NewCreateOrderCommand(850, 45, &distance, &level)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	valueRs         float64
	deliveryTimeMin int
	distanceKm      *float64
	trafficLevel    *route.TrafficLevel

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// distanceKm and trafficLevel are optional but must be provided together;
// when present they describe the route to create for the order.
func NewCreateOrderCommand(
	valueRs float64,
	deliveryTimeMin int,
	distanceKm *float64,
	trafficLevel *route.TrafficLevel,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setValueRs(valueRs),
		command.setDeliveryTimeMin(deliveryTimeMin),
		command.setRouteSpec(distanceKm, trafficLevel),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ValueRs returns the order value in rupees.
func (c CreateOrderCommand) ValueRs() float64 {
	return c.valueRs
}

// DeliveryTimeMin returns the order's base delivery time in minutes.
func (c CreateOrderCommand) DeliveryTimeMin() int {
	return c.deliveryTimeMin
}

// HasRoute reports whether the command carries a route to create.
func (c CreateOrderCommand) HasRoute() bool {
	return c.distanceKm != nil
}

// DistanceKm returns the route distance; only meaningful when HasRoute.
func (c CreateOrderCommand) DistanceKm() float64 {
	if c.distanceKm == nil {
		return 0
	}
	return *c.distanceKm
}

// TrafficLevel returns the route traffic level; only meaningful when HasRoute.
func (c CreateOrderCommand) TrafficLevel() route.TrafficLevel {
	if c.trafficLevel == nil {
		return 0
	}
	return *c.trafficLevel
}

func (c *CreateOrderCommand) setValueRs(valueRs float64) error {
	if valueRs <= 0 {
		return ErrOrderValueIsInvalid
	}

	c.valueRs = valueRs
	return nil
}

func (c *CreateOrderCommand) setDeliveryTimeMin(deliveryTimeMin int) error {
	if deliveryTimeMin <= 0 {
		return ErrDeliveryTimeIsInvalid
	}

	c.deliveryTimeMin = deliveryTimeMin
	return nil
}

func (c *CreateOrderCommand) setRouteSpec(distanceKm *float64, trafficLevel *route.TrafficLevel) error {
	if distanceKm == nil && trafficLevel == nil {
		return nil
	}
	if distanceKm == nil || trafficLevel == nil {
		return ErrRouteSpecIsIncomplete
	}
	if *distanceKm <= 0 {
		return ErrDistanceIsInvalid
	}
	if err := trafficLevel.Validate(); err != nil {
		return err
	}

	c.distanceKm = distanceKm
	c.trafficLevel = trafficLevel
	return nil
}
