package services_test

import (
	"testing"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, lat, lng float64) *kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return &l
}

func TestViewportCalculator_Calculate(t *testing.T) {
	calc := services.NewViewportCalculator()

	t.Run("nothing known", func(t *testing.T) {
		_, err := calc.Calculate(telemetry.UnknownSnapshot("D1"), telemetry.Geometry{})
		require.ErrorIs(t, err, services.ErrNoKnownPoint)
	})

	t.Run("single point uses tight zoom", func(t *testing.T) {
		geom := telemetry.Geometry{Destination: loc(t, 12.5, 77.5)}

		vp, err := calc.Calculate(telemetry.UnknownSnapshot("D1"), geom)

		require.NoError(t, err)
		assert.Equal(t, telemetry.ZoomSingle, vp.Zoom)
		assert.InDelta(t, 12.5, vp.Center.Lat(), 1e-9)
		assert.InDelta(t, 77.5, vp.Center.Lng(), 1e-9)
	})

	t.Run("several points use the mean at wider zoom", func(t *testing.T) {
		geom := telemetry.Geometry{
			Source:      loc(t, 10, 70),
			Destination: loc(t, 12, 72),
			Warehouse:   loc(t, 14, 74),
		}

		vp, err := calc.Calculate(telemetry.UnknownSnapshot("D1"), geom)

		require.NoError(t, err)
		assert.Equal(t, telemetry.ZoomMulti, vp.Zoom)
		assert.InDelta(t, 12, vp.Center.Lat(), 1e-9)
		assert.InDelta(t, 72, vp.Center.Lng(), 1e-9)
	})

	t.Run("live position wins over last known", func(t *testing.T) {
		snap := telemetry.UnknownSnapshot("D1")
		snap.Latitude = telemetry.Known(20.0)
		snap.Longitude = telemetry.Known(80.0)
		geom := telemetry.Geometry{LastKnown: loc(t, 1, 1)}

		vp, err := calc.Calculate(snap, geom)

		require.NoError(t, err)
		assert.Equal(t, telemetry.ZoomSingle, vp.Zoom)
		assert.InDelta(t, 20, vp.Center.Lat(), 1e-9)
		assert.InDelta(t, 80, vp.Center.Lng(), 1e-9)
	})

	t.Run("last known is used when live position is unknown", func(t *testing.T) {
		geom := telemetry.Geometry{LastKnown: loc(t, 2, 4), Source: loc(t, 4, 8)}

		vp, err := calc.Calculate(telemetry.UnknownSnapshot("D1"), geom)

		require.NoError(t, err)
		assert.Equal(t, telemetry.ZoomMulti, vp.Zoom)
		assert.InDelta(t, 3, vp.Center.Lat(), 1e-9)
		assert.InDelta(t, 6, vp.Center.Lng(), 1e-9)
	})
}
