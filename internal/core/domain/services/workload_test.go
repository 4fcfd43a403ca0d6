package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustDriver(t *testing.T, id int64, name string, shiftHours float64) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(mustID(t, id), name, shiftHours, driver.WeekHours{})
	require.NoError(t, err)
	return d
}

func mustOrder(t *testing.T, id int64, deliveryTimeMin int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(mustID(t, id), 100, deliveryTimeMin, nil)
	require.NoError(t, err)
	return o
}

func mustAssignment(t *testing.T, id, orderID, driverID int64, estimatedTimeMin int) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(
		mustID(t, id), mustID(t, orderID), mustID(t, driverID),
		estimatedTimeMin, time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}

func TestWorkloadCalculator_CurrentWorkload(t *testing.T) {
	calc := services.NewWorkloadCalculator()

	t.Run("sums_estimates_of_the_drivers_assignments_only", func(t *testing.T) {
		// Given: two assignments for driver 1, one for driver 2
		assignments := []*assignment.Assignment{
			mustAssignment(t, 1, 10, 1, 60),
			mustAssignment(t, 2, 11, 1, 45),
			mustAssignment(t, 3, 12, 2, 30),
		}

		// When
		workload := calc.CurrentWorkload(mustID(t, 1), assignments, nil)

		// Then
		assert.Equal(t, 105, workload)
	})

	t.Run("empty_assignment_set_is_zero_workload", func(t *testing.T) {
		workload := calc.CurrentWorkload(mustID(t, 1), nil, nil)
		assert.Equal(t, 0, workload)
	})
}

func TestWorkloadCalculator_RemainingCapacity(t *testing.T) {
	calc := services.NewWorkloadCalculator()

	t.Run("subtracts_workload_from_shift_minutes", func(t *testing.T) {
		d := mustDriver(t, 1, "Amit", 8)
		assert.InDelta(t, 380.0, calc.RemainingCapacity(d, 100), 0.0001)
	})

	t.Run("may_be_negative_during_validation", func(t *testing.T) {
		d := mustDriver(t, 1, "Amit", 1)
		assert.InDelta(t, -40.0, calc.RemainingCapacity(d, 100), 0.0001)
	})

	t.Run("handles_fractional_shifts", func(t *testing.T) {
		d := mustDriver(t, 1, "Amit", 7.5)
		assert.InDelta(t, 450.0, calc.RemainingCapacity(d, 0), 0.0001)
	})
}

func TestWorkloadCalculator_WorkloadPercentage(t *testing.T) {
	calc := services.NewWorkloadCalculator()

	t.Run("hundred_minutes_of_an_eight_hour_shift_is_about_21_percent", func(t *testing.T) {
		// 100min = 1.67h of 8h → 20.875% → 21
		d := mustDriver(t, 1, "Amit", 8)
		assert.Equal(t, 21, calc.WorkloadPercentage(d, 100))
	})

	t.Run("full_shift_is_100_percent", func(t *testing.T) {
		d := mustDriver(t, 1, "Amit", 8)
		assert.Equal(t, 100, calc.WorkloadPercentage(d, 480))
	})

	t.Run("is_not_clamped_above_100", func(t *testing.T) {
		d := mustDriver(t, 1, "Amit", 8)
		assert.Equal(t, 125, calc.WorkloadPercentage(d, 600))
	})
}

func TestWorkloadCalculator_WorkloadHours(t *testing.T) {
	calc := services.NewWorkloadCalculator()
	assert.InDelta(t, 1.67, calc.WorkloadHours(100), 0.0001)
	assert.InDelta(t, 8.0, calc.WorkloadHours(480), 0.0001)
	assert.InDelta(t, 0.0, calc.WorkloadHours(0), 0.0001)
}
