package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpin "missionctl/internal/adapters/in/http"
	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/application/usecases/queries"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/core/ports"
	"missionctl/internal/generated/servers"
	"missionctl/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeTower struct {
	mu      sync.Mutex
	listErr error
	updates []kernel.Location
	launch  error
}

func (f *fakeTower) ListDeliveryDrones(context.Context) ([]*drone.Drone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	src, _ := kernel.NewLocation(12.97, 77.59)
	d1, _ := drone.NewDrone("D1", drone.Attributes{Name: "Hawk"}, &src, []string{"PKG-1", "", ""})
	d2, _ := drone.NewDrone("D2", drone.Attributes{Name: "Kite"}, nil, []string{"PKG-2", "", ""})
	return []*drone.Drone{d1, d2}, nil
}

func (f *fakeTower) GetDrone(_ context.Context, droneID string) (*drone.Drone, error) {
	src, _ := kernel.NewLocation(12.97, 77.59)
	return drone.NewDrone(droneID, drone.Attributes{Name: "Hawk", Model: "X4", Battery: "LiPo 5000"}, &src, []string{"PKG-1", "", ""})
}

func (f *fakeTower) UpdateSourceCoordinates(_ context.Context, _ string, source kernel.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, source)
	return nil
}

func (f *fakeTower) ResolveDestination(context.Context, string) (facility.Resolution, error) {
	dest, _ := kernel.NewLocation(13.01, 77.61)
	ddt, err := facility.NewFacility("F1", "DDT-1", 4, facility.StatusActive,
		map[facility.RackKey]string{"rack_01": "PKG-9"})
	if err != nil {
		return facility.Resolution{}, err
	}
	return facility.NewResolution(dest, []*facility.Facility{ddt}, nil)
}

func (f *fakeTower) Launch(context.Context, ports.LaunchRequest) (mission.ControlKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launch != nil {
		return "", f.launch
	}
	return "key-1", nil
}

func (f *fakeTower) Status(context.Context, string) (mission.Status, error) {
	return mission.Processing, nil
}

func (f *fakeTower) Reset(context.Context, string, mission.ControlKey) error {
	return nil
}

func (f *fakeTower) Pickup(context.Context, string, facility.RackSelection) error {
	return nil
}

func (f *fakeTower) OtpRecord(context.Context, string) (mission.OtpRecord, error) {
	return mission.OtpRecord{}, errs.NewTransportError("otp", errors.New("not yet"))
}

type fakeMailer struct{}

func (fakeMailer) SendOtp(context.Context, ports.OtpEmail) error { return nil }

type fakeMonitor struct{}

func (fakeMonitor) Parameters(_ context.Context, droneID string) (telemetry.Snapshot, error) {
	s := telemetry.UnknownSnapshot(droneID)
	s.BatteryLevel = telemetry.Known(87.5)
	s.Mode = telemetry.Known("GUIDED")
	return s, nil
}

func (fakeMonitor) Geometry(_ context.Context, droneID string) (telemetry.Geometry, error) {
	last, _ := kernel.NewLocation(12.9, 77.5)
	return telemetry.Geometry{DroneID: droneID, LastKnown: &last}, nil
}

func (fakeMonitor) CameraURL(_ context.Context, droneID string) (string, error) {
	return "rtsp://camera.local/" + droneID, nil
}

func (fakeMonitor) SendCommand(_ context.Context, _ string, command telemetry.Command) (string, error) {
	if command == telemetry.Command("land") {
		return "", errs.NewBusinessError("drone control", "Command failed", http.StatusOK)
	}
	return "Command " + command.String() + " sent", nil
}

func newTestServer(t *testing.T, tower *fakeTower) *httptest.Server {
	t.Helper()

	sessions, err := missioncontrol.NewRegistry(missioncontrol.Dependencies{
		Drones:       tower,
		Missions:     tower,
		Mailer:       fakeMailer{},
		PollInterval: time.Hour,
		Logger:       discard,
	}, 8)
	require.NoError(t, err)
	t.Cleanup(sessions.CloseAll)

	views, err := monitoring.NewRegistry(monitoring.Dependencies{
		Telemetry:    fakeMonitor{},
		PollInterval: 20 * time.Millisecond,
		Logger:       discard,
	}, 8)
	require.NoError(t, err)
	t.Cleanup(views.CloseAll)

	srv := httpin.NewServer(httpin.CommandHandlers{
		CreateSession:           commands.NewCreateSessionCommandHandler(sessions),
		CloseSession:            commands.NewCloseSessionCommandHandler(sessions),
		SelectDrone:             commands.NewSelectDroneCommandHandler(sessions),
		RequestCoordinateUpdate: commands.NewRequestCoordinateUpdateCommandHandler(sessions),
		SubmitCoordinates:       commands.NewSubmitCoordinatesCommandHandler(sessions),
		CancelPrompt:            commands.NewCancelPromptCommandHandler(sessions),
		SelectFacility:          commands.NewSelectFacilityCommandHandler(sessions),
		SelectRack:              commands.NewSelectRackCommandHandler(sessions),
		SelectPackage:           commands.NewSelectPackageCommandHandler(sessions),
		LaunchMission:           commands.NewLaunchMissionCommandHandler(sessions),
		ResetMission:            commands.NewResetMissionCommandHandler(sessions),
		ResendOtp:               commands.NewResendOtpCommandHandler(sessions),
		ConfirmPickup:           commands.NewConfirmPickupCommandHandler(sessions),
		OpenView:                commands.NewOpenViewCommandHandler(views),
		SwitchViewDrone:         commands.NewSwitchViewDroneCommandHandler(views),
		CloseView:               commands.NewCloseViewCommandHandler(views),
		ControlDrone:            commands.NewControlDroneCommandHandler(views),
	}, httpin.QueryHandlers{
		GetSession:   queries.NewGetSessionQueryHandler(sessions),
		ListDrones:   queries.NewListDronesQueryHandler(sessions),
		GetView:      queries.NewGetViewQueryHandler(views),
		GetCameraURL: queries.NewGetCameraURLQueryHandler(views),
		StreamView:   queries.NewStreamViewQueryHandler(views),
	}, discard)

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, srv, servers.BaseURL)

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method string, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+servers.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createSession(t *testing.T, ts *httptest.Server) servers.Session {
	t.Helper()
	var session servers.Session
	require.Equal(t, http.StatusCreated, call(t, ts, http.MethodPost, "/sessions", nil, &session))
	return session
}

func TestServer_SessionLifecycle(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})

	session := createSession(t, ts)
	assert.Equal(t, servers.MissionStatusReady, session.Mission.Status)
	assert.Equal(t, servers.MissionDispatchNotDispatched, session.Mission.Dispatch)
	assert.Empty(t, session.Drones)

	var got servers.Session
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, "/sessions/"+session.Id.String(), nil, &got))
	assert.Equal(t, session.Id, got.Id)

	require.Equal(t, http.StatusNoContent, call(t, ts, http.MethodDelete, "/sessions/"+session.Id.String(), nil, nil))

	var missing servers.Error
	require.Equal(t, http.StatusNotFound, call(t, ts, http.MethodGet, "/sessions/"+session.Id.String(), nil, &missing))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestServer_MalformedSessionID(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})

	status := call(t, ts, http.MethodGet, "/sessions/not-a-uuid", nil, nil)

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_SelectDroneThroughCoordinatePrompt(t *testing.T) {
	tower := &fakeTower{}
	ts := newTestServer(t, tower)
	base := "/sessions/" + createSession(t, ts).Id.String()

	var drones []servers.Drone
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, base+"/drones", nil, &drones))
	require.Len(t, drones, 2)
	assert.Equal(t, "D1", drones[0].Id)
	assert.NotNil(t, drones[0].Source)
	assert.Nil(t, drones[1].Source)

	var session servers.Session
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/drones/D2/select", nil, &session))
	require.NotNil(t, session.Prompt)
	assert.Equal(t, servers.CoordinatePromptActionSelect, session.Prompt.Action)
	assert.Equal(t, "D2", session.Prompt.DroneId)
	assert.Nil(t, session.SelectedDrone)

	var invalid servers.Error
	status := call(t, ts, http.MethodPost, base+"/prompt",
		servers.SubmitCoordinatesRequest{SourceLat: "north", SourceLng: "77.6"}, &invalid)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	status = call(t, ts, http.MethodPost, base+"/prompt",
		servers.SubmitCoordinatesRequest{SourceLat: "12.5", SourceLng: "77.6"}, &session)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, session.Prompt)
	require.NotNil(t, session.SelectedDrone)
	assert.Equal(t, "D2", session.SelectedDrone.Id)
	require.NotNil(t, session.Destination)
	require.Len(t, session.Facilities, 1)
	assert.Equal(t, "DDT-1", session.Facilities[0].Name)
	assert.Equal(t, servers.FacilityStatusActive, session.Facilities[0].Status)
	require.Len(t, session.Facilities[0].Occupied, 1)
	assert.Equal(t, "Rack 01", session.Facilities[0].Occupied[0].RackLabel)

	tower.mu.Lock()
	assert.Len(t, tower.updates, 1)
	tower.mu.Unlock()
}

func TestServer_UnknownDroneIsNotFound(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})
	base := "/sessions/" + createSession(t, ts).Id.String()

	status := call(t, ts, http.MethodPost, base+"/drones/D9/select", nil, nil)

	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_BackendUnreachable(t *testing.T) {
	tower := &fakeTower{listErr: errs.NewTransportError("delivery drones", errors.New("connection refused"))}
	ts := newTestServer(t, tower)
	base := "/sessions/" + createSession(t, ts).Id.String()

	var body servers.Error
	status := call(t, ts, http.MethodGet, base+"/drones", nil, &body)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body.Message, "connection refused")
}

func TestServer_LaunchRejectionIsSurfacedVerbatim(t *testing.T) {
	tower := &fakeTower{launch: errs.NewBusinessError("launch", "Rack rack_02 already reserved", http.StatusConflict)}
	ts := newTestServer(t, tower)
	base := "/sessions/" + createSession(t, ts).Id.String()

	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, base+"/drones", nil, nil))
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/drones/D1/select", nil, nil))
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/package",
		servers.SelectPackageRequest{PackageId: "PKG-1"}, nil))
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/facility",
		servers.SelectFacilityRequest{Name: "DDT-1"}, nil))

	var occupied servers.Error
	require.Equal(t, http.StatusBadRequest, call(t, ts, http.MethodPost, base+"/rack",
		servers.SelectRackRequest{RackColumn: "rack_01"}, &occupied))

	var session servers.Session
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/rack",
		servers.SelectRackRequest{RackColumn: "rack_02"}, &session))
	require.NotNil(t, session.SelectedRack)
	assert.Equal(t, "rack_02", *session.SelectedRack)

	var rejected servers.Error
	status := call(t, ts, http.MethodPost, base+"/launch", nil, &rejected)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Rack rack_02 already reserved", rejected.Message)
}

func TestServer_LaunchWithoutSelectionIsRejectedLocally(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})
	base := "/sessions/" + createSession(t, ts).Id.String()

	status := call(t, ts, http.MethodPost, base+"/launch", nil, nil)

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_Views(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})

	var view servers.View
	require.Equal(t, http.StatusCreated, call(t, ts, http.MethodPost, "/monitoring/views",
		servers.DroneRef{DroneId: "D1"}, &view))
	assert.Equal(t, "D1", view.DroneId)
	base := "/monitoring/views/" + view.Id.String()

	require.Eventually(t, func() bool {
		var got servers.View
		call(t, ts, http.MethodGet, base, nil, &got)
		return got.Parameters["battery_level"] == 87.5
	}, 2*time.Second, 20*time.Millisecond)

	var got servers.View
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, base, nil, &got))
	assert.Equal(t, "GUIDED", got.Parameters["mode"])
	assert.Equal(t, "N/A", got.Parameters["airspeed"])

	var camera servers.CameraUrl
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, base+"/camera", nil, &camera))
	assert.Equal(t, "rtsp://camera.local/D1", camera.CameraUrl)

	var result servers.CommandResult
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, base+"/commands/hover", nil, &result))
	assert.Equal(t, "Command hover sent", result.Message)

	var failed servers.Error
	require.Equal(t, http.StatusConflict, call(t, ts, http.MethodPost, base+"/commands/land", nil, &failed))
	assert.Equal(t, "Command failed", failed.Message)

	require.Equal(t, http.StatusBadRequest, call(t, ts, http.MethodPost, base+"/commands/loop", nil, nil))

	var switched servers.View
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPut, base, servers.DroneRef{DroneId: "D2"}, &switched))
	assert.Equal(t, "D2", switched.DroneId)

	require.Equal(t, http.StatusNoContent, call(t, ts, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, ts, http.MethodGet, base, nil, nil))
}

func TestServer_StreamView(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})

	var view servers.View
	require.Equal(t, http.StatusCreated, call(t, ts, http.MethodPost, "/monitoring/views",
		servers.DroneRef{DroneId: "D1"}, &view))
	base := "/monitoring/views/" + view.Id.String()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + servers.BaseURL + base + "/stream"
	conn, resp, err := websocket.DefaultDialer.DialContext(context.Background(), wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first servers.View
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, view.Id, first.Id)
	assert.Equal(t, "D1", first.DroneId)

	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPut, base, servers.DroneRef{DroneId: "D2"}, nil))
	for {
		var next servers.View
		require.NoError(t, conn.ReadJSON(&next))
		if next.DroneId == "D2" {
			break
		}
	}

	require.Equal(t, http.StatusNoContent, call(t, ts, http.MethodDelete, base, nil, nil))
	for {
		var next servers.View
		err := conn.ReadJSON(&next)
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
			break
		}
	}
}

func TestServer_StreamUnknownView(t *testing.T) {
	ts := newTestServer(t, &fakeTower{})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + servers.BaseURL +
		"/monitoring/views/" + kernel.NewUUID().String() + "/stream"
	_, resp, err := websocket.DefaultDialer.DialContext(context.Background(), wsURL, nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
