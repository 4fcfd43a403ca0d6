package errs

import (
	"errors"
	"fmt"
	"math"
)

// ErrCapacityExceeded is the sentinel for driver capacity rejections.
var ErrCapacityExceeded = errors.New("driver capacity exceeded")

// CapacityExceededError indicates a driver cannot absorb an order within the
// remaining shift capacity. It carries the numeric shortfall so callers can
// report exactly how many minutes are missing.
type CapacityExceededError struct {
	DriverName   string
	CurrentMin   float64
	AvailableMin float64
	RequiredMin  int
}

// NewCapacityExceededError creates a CapacityExceededError with the driver's
// current workload, remaining capacity and the order's required minutes.
func NewCapacityExceededError(driverName string, currentMin, availableMin float64, requiredMin int) *CapacityExceededError {
	return &CapacityExceededError{
		DriverName:   driverName,
		CurrentMin:   currentMin,
		AvailableMin: availableMin,
		RequiredMin:  requiredMin,
	}
}

// ShortfallMin returns how many minutes the driver is short of taking the order.
func (e *CapacityExceededError) ShortfallMin() float64 {
	return float64(e.RequiredMin) - e.AvailableMin
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"driver %s doesn't have enough capacity. Current: %.0fmin, Available: %.0fmin, Required: %dmin",
		e.DriverName,
		math.Round(e.CurrentMin),
		math.Round(e.AvailableMin),
		e.RequiredMin,
	)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
