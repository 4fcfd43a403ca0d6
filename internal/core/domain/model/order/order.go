// Package order contains the Order aggregate.
package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrValueIsInvalid is returned when the monetary value is not positive.
	ErrValueIsInvalid = errors.New("order value must be greater than 0")
	// ErrDeliveryTimeIsInvalid is returned when the delivery time is not positive.
	ErrDeliveryTimeIsInvalid = errors.New("delivery time must be greater than 0")
)

// Order represents a delivery request with a monetary value and a base
// delivery-time estimate. An order optionally references one route; many
// orders may share a route.
//
// Invariants enforced elsewhere but worth stating here:
//   - a non-deleted order has at most one active assignment (the matcher's job)
//   - the order's deliveryTimeMin is the raw, unadjusted estimate; the traffic
//     model produces the adjusted one when a route is attached
type Order struct {
	id              kernel.ID
	valueRs         float64
	deliveryTimeMin int
	routeID         *kernel.ID
	guard           guard.ConstructorGuard
}

// NewOrder creates an unpersisted Order. routeID is nil for orders without a
// route. The store assigns the identifier on first save.
func NewOrder(valueRs float64, deliveryTimeMin int, routeID *kernel.ID) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setValueRs(valueRs),
		o.setDeliveryTimeMin(deliveryTimeMin),
		o.setRouteID(routeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
func RestoreOrder(id kernel.ID, valueRs float64, deliveryTimeMin int, routeID *kernel.ID) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setValueRs(valueRs),
		o.setDeliveryTimeMin(deliveryTimeMin),
		o.setRouteID(routeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier; zero until the order is persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// ValueRs returns the monetary value of the order.
func (o *Order) ValueRs() float64 {
	return o.valueRs
}

// DeliveryTimeMin returns the order's own base delivery-time estimate.
func (o *Order) DeliveryTimeMin() int {
	return o.deliveryTimeMin
}

// RouteID returns the referenced route's identifier, or nil.
func (o *Order) RouteID() *kernel.ID {
	return o.routeID
}

// HasRoute reports whether the order references a route.
func (o *Order) HasRoute() bool {
	return o.routeID != nil
}

// EstimatedDeliveryTime returns the traffic-adjusted delivery estimate when a
// route is supplied, and the order's own deliveryTimeMin verbatim otherwise.
// Passing nil is how orders without routes are estimated.
func (o *Order) EstimatedDeliveryTime(r *route.Route) (int, error) {
	if r == nil {
		return o.deliveryTimeMin, nil
	}

	if err := r.Validate(); err != nil {
		return 0, err
	}

	return r.EstimatedTimeMin()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setValueRs(valueRs float64) error {
	if valueRs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("valueRs", ErrValueIsInvalid)
	}

	o.valueRs = valueRs
	return nil
}

func (o *Order) setDeliveryTimeMin(deliveryTimeMin int) error {
	if deliveryTimeMin <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryTimeMin", ErrDeliveryTimeIsInvalid)
	}

	o.deliveryTimeMin = deliveryTimeMin
	return nil
}

func (o *Order) setRouteID(routeID *kernel.ID) error {
	if routeID == nil {
		return nil
	}

	if err := routeID.Validate(); err != nil {
		return err
	}

	id := *routeID
	o.routeID = &id
	return nil
}
