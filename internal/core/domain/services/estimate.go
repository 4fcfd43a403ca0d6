package services

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// EstimatePolicy computes the minutes frozen onto a new assignment for the
// given order. The route argument is the order's route, or nil.
//
// Two policies exist because the bulk and manual assignment paths diverge:
// both compare capacity against the order's raw delivery time, but bulk
// freezes the raw value while manual freezes the traffic-adjusted one. The
// split is preserved deliberately rather than unified; see RawEstimate and
// TrafficAdjustedEstimate.
type EstimatePolicy func(o *order.Order, r *route.Route) (int, error)

// RawEstimate returns the order's own stored delivery time, ignoring traffic.
// This is the bulk matcher's policy.
func RawEstimate(o *order.Order, _ *route.Route) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return o.DeliveryTimeMin(), nil
}

// TrafficAdjustedEstimate returns the traffic-adjusted delivery time when the
// order has a route, and the raw delivery time otherwise. This is the manual
// assignment policy.
func TrafficAdjustedEstimate(o *order.Order, r *route.Route) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return o.EstimatedDeliveryTime(r)
}
