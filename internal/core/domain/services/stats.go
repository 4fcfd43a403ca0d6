package services

import (
	"math"
	"sort"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/route"
)

// OrderSnapshot is the read-model slice of an active order the aggregator needs.
// RouteBaseTimeMin and RouteTrafficLevel are nil for orders without a route.
type OrderSnapshot struct {
	ID                int64
	DeliveryTimeMin   int
	RouteBaseTimeMin  *int
	RouteTrafficLevel *route.TrafficLevel
	Assigned          bool
}

// AssignmentSnapshot is the read-model slice of an active assignment.
type AssignmentSnapshot struct {
	DriverID         int64
	DriverName       string
	DriverShiftHours float64
	EstimatedTimeMin int
}

// DriverSnapshot is the read-model slice of an active driver.
type DriverSnapshot struct {
	ID         int64
	ShiftHours float64
	PastWeek   driver.WeekHours
}

// DashboardStats is the summary block backing the dashboard view.
type DashboardStats struct {
	TotalOrders           int
	PendingAssignments    int
	AverageDeliveryTime   float64
	AssignmentRate        int
	TotalAssignments      int
	TotalDrivers          int
	AverageDriverWorkload float64
}

// DriverAssignmentGroup is the per-driver breakdown of committed work.
type DriverAssignmentGroup struct {
	DriverID        int64
	DriverName      string
	ShiftHours      float64
	AssignmentCount int
	TotalTimeMin    int
	TotalTimeHours  float64
}

// StatsAggregator derives dashboard and summary statistics from a snapshot of
// the current data. Every call computes fresh results; nothing is cached.
type StatsAggregator struct{}

// NewStatsAggregator creates a new StatsAggregator.
func NewStatsAggregator() StatsAggregator {
	return StatsAggregator{}
}

// Dashboard computes the dashboard summary block.
//
// averageDeliveryTime is the mean traffic-adjusted estimate over all active
// orders (orders without a route contribute their own delivery time), rounded
// to 2 decimals. assignmentRate is round(assigned/total×100), 0 on an empty
// set. averageDriverWorkload is the mean of the drivers' past-week hour
// totals, rounded to 2 decimals.
func (StatsAggregator) Dashboard(
	orders []OrderSnapshot,
	assignments []AssignmentSnapshot,
	drivers []DriverSnapshot,
) (DashboardStats, error) {
	stats := DashboardStats{
		TotalOrders:      len(orders),
		TotalAssignments: len(assignments),
		TotalDrivers:     len(drivers),
	}

	assigned := 0
	totalDeliveryTime := 0
	for _, o := range orders {
		if o.Assigned {
			assigned++
		}

		estimate := o.DeliveryTimeMin
		if o.RouteBaseTimeMin != nil && o.RouteTrafficLevel != nil {
			adjusted, err := route.EstimateTime(*o.RouteBaseTimeMin, *o.RouteTrafficLevel)
			if err != nil {
				return DashboardStats{}, err
			}
			estimate = adjusted
		}
		totalDeliveryTime += estimate
	}

	stats.PendingAssignments = stats.TotalOrders - assigned
	if stats.TotalOrders > 0 {
		stats.AverageDeliveryTime = round2(float64(totalDeliveryTime) / float64(stats.TotalOrders))
		stats.AssignmentRate = int(math.Round(float64(assigned) / float64(stats.TotalOrders) * 100))
	}

	if len(drivers) > 0 {
		var totalWeekHours float64
		for _, d := range drivers {
			totalWeekHours += d.PastWeek.Total()
		}
		stats.AverageDriverWorkload = round2(totalWeekHours / float64(len(drivers)))
	}

	return stats, nil
}

// GroupByDriver buckets active assignments per driver with committed totals,
// sorted by ascending driver ID.
func (StatsAggregator) GroupByDriver(assignments []AssignmentSnapshot) []DriverAssignmentGroup {
	byDriver := make(map[int64]*DriverAssignmentGroup)
	for _, a := range assignments {
		group, ok := byDriver[a.DriverID]
		if !ok {
			group = &DriverAssignmentGroup{
				DriverID:   a.DriverID,
				DriverName: a.DriverName,
				ShiftHours: a.DriverShiftHours,
			}
			byDriver[a.DriverID] = group
		}

		group.AssignmentCount++
		group.TotalTimeMin += a.EstimatedTimeMin
	}

	groups := make([]DriverAssignmentGroup, 0, len(byDriver))
	for _, group := range byDriver {
		group.TotalTimeHours = round2(float64(group.TotalTimeMin) / 60)
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].DriverID < groups[j].DriverID
	})
	return groups
}

// AverageEstimatedTime returns the mean frozen estimate over active
// assignments, rounded to 2 decimals; 0 on an empty set.
func (StatsAggregator) AverageEstimatedTime(assignments []AssignmentSnapshot) float64 {
	if len(assignments) == 0 {
		return 0
	}

	total := 0
	for _, a := range assignments {
		total += a.EstimatedTimeMin
	}
	return round2(float64(total) / float64(len(assignments)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
