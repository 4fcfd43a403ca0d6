package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustOrder(t *testing.T, id int64, deliveryTimeMin int, routeID *kernel.ID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(mustID(t, id), 500, deliveryTimeMin, routeID)
	require.NoError(t, err)
	return o
}

func mustDriver(t *testing.T, id int64, name string, shiftHours float64) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(mustID(t, id), name, shiftHours, driver.WeekHours{})
	require.NoError(t, err)
	return d
}

func mustAssignment(t *testing.T, id, orderID, driverID int64, estimatedTimeMin int) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(
		mustID(t, id),
		mustID(t, orderID),
		mustID(t, driverID),
		estimatedTimeMin,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}
