package route

import (
	"math"

	"dispatch/internal/pkg/errs"
)

// TrafficLevel represents the congestion level of a route.
// It scales the base travel time through a fixed multiplier table.
//
// Multipliers:
//
//	LOW    → 1.0
//	MEDIUM → 1.3
//	HIGH   → 1.6
type TrafficLevel int

const (
	// TrafficLow means free-flowing traffic; base time is used as-is.
	TrafficLow TrafficLevel = iota + 1
	// TrafficMedium means moderate congestion; base time is scaled by 1.3.
	TrafficMedium
	// TrafficHigh means heavy congestion; base time is scaled by 1.6.
	TrafficHigh
)

// trafficMultipliers maps each level to its time-scaling factor.
var trafficMultipliers = map[TrafficLevel]float64{
	TrafficLow:    1.0,
	TrafficMedium: 1.3,
	TrafficHigh:   1.6,
}

var trafficNames = map[TrafficLevel]string{
	TrafficLow:    "LOW",
	TrafficMedium: "MEDIUM",
	TrafficHigh:   "HIGH",
}

// ParseTrafficLevel converts the stored string form into a TrafficLevel.
// An unknown level is a validation error: silently defaulting would mask
// data errors, so callers at the boundary must fail fast instead.
func ParseTrafficLevel(s string) (TrafficLevel, error) {
	switch s {
	case "LOW":
		return TrafficLow, nil
	case "MEDIUM":
		return TrafficMedium, nil
	case "HIGH":
		return TrafficHigh, nil
	default:
		return 0, errs.NewValueIsInvalidError("trafficLevel: " + s)
	}
}

// Validate returns an error for levels outside the known set.
func (l TrafficLevel) Validate() error {
	if _, ok := trafficMultipliers[l]; !ok {
		return errs.NewValueIsInvalidError("trafficLevel")
	}
	return nil
}

// Multiplier returns the time-scaling factor for the level.
// The level must be valid.
func (l TrafficLevel) Multiplier() float64 {
	return trafficMultipliers[l]
}

// String returns the canonical stored form (LOW, MEDIUM, HIGH).
func (l TrafficLevel) String() string {
	if name, ok := trafficNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// EstimateTime computes the traffic-adjusted travel time in minutes.
// The result is the ceiling of baseTimeMin scaled by the level's multiplier,
// rounding up so the estimate never under-promises delivery time.
func EstimateTime(baseTimeMin int, level TrafficLevel) (int, error) {
	if err := level.Validate(); err != nil {
		return 0, err
	}

	return int(math.Ceil(float64(baseTimeMin) * level.Multiplier())), nil
}
