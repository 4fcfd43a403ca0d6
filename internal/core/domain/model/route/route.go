// Package route contains the Route aggregate and the traffic model.
// A route carries the distance and congestion metadata shared by the orders
// that travel it; the traffic model turns its base time into an adjusted
// delivery estimate.
package route

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// averageSpeedKmh is the assumed travel speed used to derive a base time
// from a distance when a route is created alongside an order.
const averageSpeedKmh = 30.0

var (
	// ErrRouteIsNotConstructed is returned when using a Route that was not
	// created via NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrDistanceIsInvalid is returned when the distance is not positive.
	ErrDistanceIsInvalid = errors.New("distance must be greater than 0")
	// ErrBaseTimeIsInvalid is returned when the base travel time is not positive.
	ErrBaseTimeIsInvalid = errors.New("base time must be greater than 0")
)

// Route represents the travel metadata for deliveries: distance, congestion
// level and the base travel time the traffic model scales. Many orders may
// reference one route.
type Route struct {
	id           kernel.ID
	distanceKm   float64
	trafficLevel TrafficLevel
	baseTimeMin  int
	guard        guard.ConstructorGuard
}

// NewRoute creates an unpersisted Route. The store assigns the identifier on
// first save, so ID() is zero until then.
func NewRoute(distanceKm float64, trafficLevel TrafficLevel, baseTimeMin int) (*Route, error) {
	r := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setDistanceKm(distanceKm),
		r.setTrafficLevel(trafficLevel),
		r.setBaseTimeMin(baseTimeMin),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistent storage.
func RestoreRoute(id kernel.ID, distanceKm float64, trafficLevel TrafficLevel, baseTimeMin int) (*Route, error) {
	r := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDistanceKm(distanceKm),
		r.setTrafficLevel(trafficLevel),
		r.setBaseTimeMin(baseTimeMin),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// BaseTimeForDistance derives a base travel time in minutes from a distance,
// assuming the fleet's average speed of 30 km/h. Rounded up.
func BaseTimeForDistance(distanceKm float64) int {
	return int(math.Ceil(distanceKm / averageSpeedKmh * 60))
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route identifier; zero until the route is persisted.
func (r *Route) ID() kernel.ID {
	return r.id
}

// DistanceKm returns the route distance in kilometers.
func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

// TrafficLevel returns the route's congestion level.
func (r *Route) TrafficLevel() TrafficLevel {
	return r.trafficLevel
}

// BaseTimeMin returns the unadjusted travel time in minutes.
func (r *Route) BaseTimeMin() int {
	return r.baseTimeMin
}

// EstimatedTimeMin returns the traffic-adjusted travel time in minutes.
func (r *Route) EstimatedTimeMin() (int, error) {
	return EstimateTime(r.baseTimeMin, r.trafficLevel)
}

func (r *Route) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Route) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm", ErrDistanceIsInvalid)
	}

	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setTrafficLevel(trafficLevel TrafficLevel) error {
	if err := trafficLevel.Validate(); err != nil {
		return err
	}

	r.trafficLevel = trafficLevel
	return nil
}

func (r *Route) setBaseTimeMin(baseTimeMin int) error {
	if baseTimeMin <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseTimeMin", ErrBaseTimeIsInvalid)
	}

	r.baseTimeMin = baseTimeMin
	return nil
}
