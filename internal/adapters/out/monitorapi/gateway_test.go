package monitorapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"missionctl/internal/adapters/out/monitorapi"
	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, pattern string, handler http.HandlerFunc) *monitorapi.Gateway {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := restclient.New(srv.URL+"/api", time.Second, logger)
	require.NoError(t, err)
	gw, err := monitorapi.NewGateway(client, logger)
	require.NoError(t, err)
	return gw
}

func reply(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewGateway(t *testing.T) {
	_, err := monitorapi.NewGateway(nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGateway_Parameters(t *testing.T) {
	t.Run("known and unknown fields", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-parameters/D1", reply(http.StatusOK, `{"parameters":{
			"latitude":12.97,"longitude":"77.59","altitude_rel":"N/A","battery_level":81,
			"groundspeed":4.2,"heading":270,"mode":"GUIDED","armed":true,"is_armable":"N/A",
			"satellites_visible":11,"fix_type":"N/A"}}`))

		s, err := gw.Parameters(context.Background(), "D1")

		require.NoError(t, err)
		assert.Equal(t, "D1", s.DroneID)
		assert.False(t, s.ReceivedAt.IsZero())

		lat, ok := s.Latitude.Value()
		require.True(t, ok)
		assert.InDelta(t, 12.97, lat, 1e-9)
		pos, ok := s.Position()
		require.True(t, ok)
		assert.InDelta(t, 77.59, pos.Lng(), 1e-9)

		assert.False(t, s.AltitudeRel.IsKnown())
		assert.Equal(t, telemetry.NotAvailable, s.AltitudeRel.String())
		assert.False(t, s.Yaw.IsKnown())
		assert.False(t, s.IsArmable.IsKnown())
		assert.False(t, s.FixType.IsKnown())

		assert.Equal(t, telemetry.Known("GUIDED"), s.Mode)
		assert.Equal(t, telemetry.Known(true), s.Armed)
		assert.Equal(t, telemetry.Known(11), s.SatellitesVisible)
	})

	t.Run("no parameters object", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-parameters/D1", reply(http.StatusOK, `{}`))

		s, err := gw.Parameters(context.Background(), "D1")

		require.NoError(t, err)
		_, ok := s.Position()
		assert.False(t, ok)
		assert.False(t, s.Mode.IsKnown())
	})

	t.Run("backend error", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-parameters/D1",
			reply(http.StatusOK, `{"error":"Drone D1 has no communication key"}`))

		_, err := gw.Parameters(context.Background(), "D1")

		require.ErrorIs(t, err, errs.ErrBusiness)
		assert.Equal(t, "Drone D1 has no communication key", errs.Message(err))
	})

	t.Run("unreachable relay", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-parameters/D1", reply(http.StatusServiceUnavailable, `oops`))

		_, err := gw.Parameters(context.Background(), "D1")

		require.ErrorIs(t, err, errs.ErrTransport)
	})
}

func TestGateway_Geometry(t *testing.T) {
	t.Run("all points", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-monitoring/D1", reply(http.StatusOK, `{
			"drone":{"drone_id":"D1","drone_name":"Hawk","last_known_lat":12.9,"last_known_lng":"77.5"},
			"source":{"latitude":12.8,"longitude":77.4},
			"destination":{"latitude":"13.1","longitude":"77.7"},
			"warehouse":{"latitude":13.0,"longitude":77.6}}`))

		g, err := gw.Geometry(context.Background(), "D1")

		require.NoError(t, err)
		assert.Equal(t, "D1", g.DroneID)
		assert.Equal(t, "Hawk", g.DroneName)
		require.NotNil(t, g.LastKnown)
		assert.InDelta(t, 77.5, g.LastKnown.Lng(), 1e-9)
		require.NotNil(t, g.Source)
		require.NotNil(t, g.Destination)
		assert.InDelta(t, 13.1, g.Destination.Lat(), 1e-9)
		require.NotNil(t, g.Warehouse)
	})

	t.Run("missing and zero points are absent", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-monitoring/D1", reply(http.StatusOK, `{
			"drone":{"drone_id":"D1","last_known_lat":null,"last_known_lng":null},
			"source":{"latitude":0,"longitude":0},
			"destination":{"latitude":13.1,"longitude":77.7},
			"warehouse":null}`))

		g, err := gw.Geometry(context.Background(), "D1")

		require.NoError(t, err)
		assert.Nil(t, g.LastKnown)
		assert.Nil(t, g.Source)
		assert.NotNil(t, g.Destination)
		assert.Nil(t, g.Warehouse)
	})

	t.Run("unknown drone", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-monitoring/D9",
			reply(http.StatusNotFound, `{"error":"Drone not found"}`))

		_, err := gw.Geometry(context.Background(), "D9")

		require.ErrorIs(t, err, errs.ErrBusiness)
	})
}

func TestGateway_CameraURL(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-camera/D1",
			reply(http.StatusOK, `{"camera_url":"http://cam.local/D1/stream"}`))

		u, err := gw.CameraURL(context.Background(), "D1")

		require.NoError(t, err)
		assert.Equal(t, "http://cam.local/D1/stream", u)
	})

	t.Run("empty url", func(t *testing.T) {
		gw := newGateway(t, "GET /api/drone-camera/D1", reply(http.StatusOK, `{"camera_url":null}`))

		_, err := gw.CameraURL(context.Background(), "D1")

		require.ErrorIs(t, err, errs.ErrTransport)
	})
}

func TestGateway_SendCommand(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		gw := newGateway(t, "POST /api/drone-control/D1/rtl",
			reply(http.StatusOK, `{"status":"success","message":"Returning to launch"}`))

		msg, err := gw.SendCommand(context.Background(), "D1", telemetry.CommandRTL)

		require.NoError(t, err)
		assert.Equal(t, "Returning to launch", msg)
	})

	t.Run("rejected with message", func(t *testing.T) {
		gw := newGateway(t, "POST /api/drone-control/D1/land",
			reply(http.StatusBadRequest, `{"error":"Drone is not armed"}`))

		_, err := gw.SendCommand(context.Background(), "D1", telemetry.CommandLand)

		require.ErrorIs(t, err, errs.ErrBusiness)
		assert.Equal(t, "Drone is not armed", errs.Message(err))
	})

	t.Run("rejected without message", func(t *testing.T) {
		gw := newGateway(t, "POST /api/drone-control/D1/hover", reply(http.StatusOK, `{"status":"queued"}`))

		_, err := gw.SendCommand(context.Background(), "D1", telemetry.CommandHover)

		require.ErrorIs(t, err, errs.ErrBusiness)
		assert.Equal(t, "Command failed", errs.Message(err))
	})
}
