package services

import (
	"math"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// WorkloadCalculator derives a driver's committed minutes and remaining
// capacity from their active assignments.
//
// The capacity invariant the rest of the engine preserves:
//
//	CurrentWorkload(driver) ≤ driver.MaxWorkloadMin()
//
// immediately after any successful assignment operation.
type WorkloadCalculator struct{}

// NewWorkloadCalculator creates a new WorkloadCalculator.
func NewWorkloadCalculator() WorkloadCalculator {
	return WorkloadCalculator{}
}

// CurrentWorkload sums the frozen estimates of the driver's active
// assignments, in minutes. Assignments belonging to other drivers are
// ignored, so callers may pass a mixed set. When an assignment's estimate is
// absent the underlying order's delivery time is used instead; that is a
// defensive default, estimates are normally always populated.
func (WorkloadCalculator) CurrentWorkload(
	driverID kernel.ID,
	assignments []*assignment.Assignment,
	ordersByID map[int64]*order.Order,
) int {
	total := 0
	for _, a := range assignments {
		if !a.DriverID().IsEqual(driverID) {
			continue
		}

		if est := a.EstimatedTimeMin(); est > 0 {
			total += est
			continue
		}

		if o, ok := ordersByID[a.OrderID().Int64()]; ok {
			total += o.DeliveryTimeMin()
		}
	}

	return total
}

// RemainingCapacity returns the minutes the driver can still absorb:
// shiftHours × 60 minus the current workload. The result may be negative
// while a rejection is being computed; a negative value is never persisted.
func (WorkloadCalculator) RemainingCapacity(d *driver.Driver, currentWorkloadMin int) float64 {
	return d.MaxWorkloadMin() - float64(currentWorkloadMin)
}

// WorkloadHours converts committed minutes to hours, rounded to 2 decimals.
func (WorkloadCalculator) WorkloadHours(currentWorkloadMin int) float64 {
	return math.Round(float64(currentWorkloadMin)/60*100) / 100
}

// WorkloadPercentage returns the share of the shift already committed,
// rounded to the nearest whole percent. The arithmetic is not clamped;
// display layers may clamp the rendered value.
func (c WorkloadCalculator) WorkloadPercentage(d *driver.Driver, currentWorkloadMin int) int {
	currentHours := c.WorkloadHours(currentWorkloadMin)
	return int(math.Round(currentHours / d.ShiftHours() * 100))
}
