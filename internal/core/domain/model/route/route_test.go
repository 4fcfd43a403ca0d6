package route_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("creates_unpersisted_route", func(t *testing.T) {
		// When
		r, err := route.NewRoute(12.5, route.TrafficHigh, 25)

		// Then
		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.InDelta(t, 12.5, r.DistanceKm(), 0.0001)
		assert.Equal(t, route.TrafficHigh, r.TrafficLevel())
		assert.Equal(t, 25, r.BaseTimeMin())
		assert.Equal(t, int64(0), r.ID().Int64())
	})

	t.Run("rejects_non_positive_distance", func(t *testing.T) {
		for _, distance := range []float64{0, -1.5} {
			_, err := route.NewRoute(distance, route.TrafficLow, 10)
			require.Error(t, err)
			assert.ErrorIs(t, err, route.ErrDistanceIsInvalid)
		}
	})

	t.Run("rejects_non_positive_base_time", func(t *testing.T) {
		_, err := route.NewRoute(5, route.TrafficLow, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, route.ErrBaseTimeIsInvalid)
	})

	t.Run("rejects_unknown_traffic_level", func(t *testing.T) {
		_, err := route.NewRoute(5, route.TrafficLevel(0), 10)
		require.Error(t, err)
	})
}

func TestRestoreRoute(t *testing.T) {
	t.Run("restores_persisted_route", func(t *testing.T) {
		// Given
		id, _ := kernel.NewID(3)

		// When
		r, err := route.RestoreRoute(id, 8.0, route.TrafficMedium, 16)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.ID().Int64())
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		var zeroID kernel.ID
		_, err := route.RestoreRoute(zeroID, 8.0, route.TrafficMedium, 16)
		require.Error(t, err)
	})
}

func TestRoute_EstimatedTimeMin(t *testing.T) {
	// Given
	r, err := route.NewRoute(20.0, route.TrafficHigh, 45)
	require.NoError(t, err)

	// When
	estimate, err := r.EstimatedTimeMin()

	// Then
	require.NoError(t, err)
	assert.Equal(t, 72, estimate)
}

func TestRoute_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var r route.Route
		assert.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	})

	t.Run("nil_route_is_not_constructed", func(t *testing.T) {
		var r *route.Route
		assert.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	})
}
