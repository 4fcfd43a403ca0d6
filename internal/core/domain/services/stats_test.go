package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func trafficPtr(level route.TrafficLevel) *route.TrafficLevel { return &level }

func mustWeek(t *testing.T, hours [7]float64) driver.WeekHours {
	t.Helper()
	week, err := driver.NewWeekHours(hours[:])
	require.NoError(t, err)
	return week
}

func TestStatsAggregator_Dashboard(t *testing.T) {
	aggregator := services.NewStatsAggregator()

	t.Run("empty_snapshot_yields_zeros", func(t *testing.T) {
		// When
		stats, err := aggregator.Dashboard(nil, nil, nil)

		// Then
		require.NoError(t, err)
		assert.Equal(t, services.DashboardStats{}, stats)
	})

	t.Run("averages_the_traffic_adjusted_estimates", func(t *testing.T) {
		// Given: one routed order under HIGH traffic (ceil(45×1.6)=72) and
		// one route-less order contributing its own delivery time.
		orders := []services.OrderSnapshot{
			{ID: 1, DeliveryTimeMin: 45, RouteBaseTimeMin: intPtr(45), RouteTrafficLevel: trafficPtr(route.TrafficHigh), Assigned: true},
			{ID: 2, DeliveryTimeMin: 30},
		}

		// When
		stats, err := aggregator.Dashboard(orders, nil, nil)

		// Then: (72+30)/2 = 51
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalOrders)
		assert.Equal(t, 1, stats.PendingAssignments)
		assert.InDelta(t, 51.0, stats.AverageDeliveryTime, 0.001)
		assert.Equal(t, 50, stats.AssignmentRate)
	})

	t.Run("assignment_rate_is_rounded_to_the_nearest_percent", func(t *testing.T) {
		// Given: 2 of 3 assigned → 66.66…% → 67
		orders := []services.OrderSnapshot{
			{ID: 1, DeliveryTimeMin: 30, Assigned: true},
			{ID: 2, DeliveryTimeMin: 30, Assigned: true},
			{ID: 3, DeliveryTimeMin: 30},
		}

		// When
		stats, err := aggregator.Dashboard(orders, nil, nil)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 67, stats.AssignmentRate)
	})

	t.Run("driver_workload_is_the_mean_past_week_total", func(t *testing.T) {
		// Given: totals 40h and 35h → mean 37.5
		drivers := []services.DriverSnapshot{
			{ID: 1, ShiftHours: 8, PastWeek: mustWeek(t, [7]float64{8, 8, 8, 8, 8, 0, 0})},
			{ID: 2, ShiftHours: 8, PastWeek: mustWeek(t, [7]float64{7, 7, 7, 7, 7, 0, 0})},
		}

		// When
		stats, err := aggregator.Dashboard(nil, nil, drivers)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalDrivers)
		assert.InDelta(t, 37.5, stats.AverageDriverWorkload, 0.001)
	})
}

func TestStatsAggregator_GroupByDriver(t *testing.T) {
	aggregator := services.NewStatsAggregator()

	t.Run("buckets_per_driver_sorted_by_id", func(t *testing.T) {
		// Given
		assignments := []services.AssignmentSnapshot{
			{DriverID: 2, DriverName: "Meera", DriverShiftHours: 6, EstimatedTimeMin: 90},
			{DriverID: 1, DriverName: "Ravi", DriverShiftHours: 8, EstimatedTimeMin: 60},
			{DriverID: 2, DriverName: "Meera", DriverShiftHours: 6, EstimatedTimeMin: 45},
		}

		// When
		groups := aggregator.GroupByDriver(assignments)

		// Then
		require.Len(t, groups, 2)
		assert.Equal(t, services.DriverAssignmentGroup{
			DriverID:        1,
			DriverName:      "Ravi",
			ShiftHours:      8,
			AssignmentCount: 1,
			TotalTimeMin:    60,
			TotalTimeHours:  1,
		}, groups[0])
		assert.Equal(t, services.DriverAssignmentGroup{
			DriverID:        2,
			DriverName:      "Meera",
			ShiftHours:      6,
			AssignmentCount: 2,
			TotalTimeMin:    135,
			TotalTimeHours:  2.25,
		}, groups[1])
	})

	t.Run("no_assignments_yields_no_groups", func(t *testing.T) {
		assert.Empty(t, aggregator.GroupByDriver(nil))
	})
}

func TestStatsAggregator_AverageEstimatedTime(t *testing.T) {
	aggregator := services.NewStatsAggregator()

	t.Run("rounds_the_mean_to_two_decimals", func(t *testing.T) {
		// Given: (60+45+40)/3 = 48.33…
		assignments := []services.AssignmentSnapshot{
			{DriverID: 1, EstimatedTimeMin: 60},
			{DriverID: 1, EstimatedTimeMin: 45},
			{DriverID: 2, EstimatedTimeMin: 40},
		}

		// When / Then
		assert.InDelta(t, 48.33, aggregator.AverageEstimatedTime(assignments), 0.001)
	})

	t.Run("empty_set_is_zero", func(t *testing.T) {
		assert.Zero(t, aggregator.AverageEstimatedTime(nil))
	})
}
