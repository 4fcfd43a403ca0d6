package queries_test

import (
	"context"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// assignedAtFixture is the fixed assignment timestamp used by seed data,
// so completion-time assertions stay deterministic.
var assignedAtFixture = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// noopTracker satisfies the repositories' aggregate tracker. Query tests
// write seed data directly and never inspect tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.ID, _ any) {}

func seedRoute(ctx context.Context, db *gorm.DB, distanceKm float64, level route.TrafficLevel) (*route.Route, error) {
	r, err := route.NewRoute(distanceKm, level, route.BaseTimeForDistance(distanceKm))
	if err != nil {
		return nil, err
	}
	return routerepo.NewGormRouteRepository(db, noopTracker{}).Add(ctx, r)
}

func seedOrder(ctx context.Context, db *gorm.DB, valueRs float64, deliveryTimeMin int, routeID *kernel.ID) (*order.Order, error) {
	o, err := order.NewOrder(valueRs, deliveryTimeMin, routeID)
	if err != nil {
		return nil, err
	}
	return orderrepo.NewGormOrderRepository(db, noopTracker{}).Add(ctx, o)
}

func seedDriver(ctx context.Context, db *gorm.DB, name string, shiftHours float64, pastWeek []float64) (*driver.Driver, error) {
	week := driver.WeekHours{}
	if pastWeek != nil {
		var err error
		week, err = driver.NewWeekHours(pastWeek)
		if err != nil {
			return nil, err
		}
	}
	d, err := driver.NewDriver(name, shiftHours, week)
	if err != nil {
		return nil, err
	}
	return driverrepo.NewGormDriverRepository(db, noopTracker{}).Add(ctx, d)
}

func seedAssignment(ctx context.Context, db *gorm.DB, orderID, driverID kernel.ID, estimatedTimeMin int) (*assignment.Assignment, error) {
	a, err := assignment.NewAssignment(orderID, driverID, estimatedTimeMin, assignedAtFixture)
	if err != nil {
		return nil, err
	}
	return assignmentrepo.NewGormAssignmentRepository(db, noopTracker{}).Add(ctx, a)
}
