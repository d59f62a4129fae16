package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRegistry struct{ mock.Mock }

func (m *MockSessionRegistry) Create(id kernel.UUID, handOff missioncontrol.HandOff) (*missioncontrol.Session, error) {
	args := m.Called(id, handOff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*missioncontrol.Session), args.Error(1)
}

func (m *MockSessionRegistry) Get(id kernel.UUID) (*missioncontrol.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*missioncontrol.Session), args.Error(1)
}

func (m *MockSessionRegistry) Remove(id kernel.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockSessionRegistry) ReapIdle(now time.Time, idle time.Duration) int {
	return m.Called(now, idle).Int(0)
}

type MockViewRegistry struct{ mock.Mock }

func (m *MockViewRegistry) Open(id kernel.UUID, droneID string) (*monitoring.View, error) {
	args := m.Called(id, droneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.View), args.Error(1)
}

func (m *MockViewRegistry) Get(id kernel.UUID) (*monitoring.View, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.View), args.Error(1)
}

func (m *MockViewRegistry) Remove(id kernel.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockViewRegistry) ReapIdle(now time.Time, idle time.Duration) int {
	return m.Called(now, idle).Int(0)
}

type MockDroneGateway struct{ mock.Mock }

func (m *MockDroneGateway) ListDeliveryDrones(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

func (m *MockDroneGateway) GetDrone(ctx context.Context, droneID string) (*drone.Drone, error) {
	args := m.Called(ctx, droneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneGateway) UpdateSourceCoordinates(ctx context.Context, droneID string, source kernel.Location) error {
	return m.Called(ctx, droneID, source).Error(0)
}

func (m *MockDroneGateway) ResolveDestination(ctx context.Context, droneID string) (facility.Resolution, error) {
	args := m.Called(ctx, droneID)
	return args.Get(0).(facility.Resolution), args.Error(1)
}

type MockMissionGateway struct{ mock.Mock }

func (m *MockMissionGateway) Launch(ctx context.Context, req ports.LaunchRequest) (mission.ControlKey, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(mission.ControlKey), args.Error(1)
}

func (m *MockMissionGateway) Status(ctx context.Context, packageID string) (mission.Status, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).(mission.Status), args.Error(1)
}

func (m *MockMissionGateway) Reset(ctx context.Context, packageID string, key mission.ControlKey) error {
	return m.Called(ctx, packageID, key).Error(0)
}

func (m *MockMissionGateway) Pickup(ctx context.Context, packageID string, selection facility.RackSelection) error {
	return m.Called(ctx, packageID, selection).Error(0)
}

func (m *MockMissionGateway) OtpRecord(ctx context.Context, packageID string) (mission.OtpRecord, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).(mission.OtpRecord), args.Error(1)
}

type MockOtpMailer struct{ mock.Mock }

func (m *MockOtpMailer) SendOtp(ctx context.Context, email ports.OtpEmail) error {
	return m.Called(ctx, email).Error(0)
}

type MockTelemetryGateway struct{ mock.Mock }

func (m *MockTelemetryGateway) Parameters(ctx context.Context, droneID string) (telemetry.Snapshot, error) {
	args := m.Called(ctx, droneID)
	return args.Get(0).(telemetry.Snapshot), args.Error(1)
}

func (m *MockTelemetryGateway) Geometry(ctx context.Context, droneID string) (telemetry.Geometry, error) {
	args := m.Called(ctx, droneID)
	return args.Get(0).(telemetry.Geometry), args.Error(1)
}

func (m *MockTelemetryGateway) CameraURL(ctx context.Context, droneID string) (string, error) {
	args := m.Called(ctx, droneID)
	return args.String(0), args.Error(1)
}

func (m *MockTelemetryGateway) SendCommand(ctx context.Context, droneID string, command telemetry.Command) (string, error) {
	args := m.Called(ctx, droneID, command)
	return args.String(0), args.Error(1)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newSession builds a live session backed by mocked gateways.
func newSession(t *testing.T) (*missioncontrol.Session, *MockDroneGateway, *MockMissionGateway) {
	t.Helper()
	drones := new(MockDroneGateway)
	missions := new(MockMissionGateway)
	s, err := missioncontrol.NewSession(kernel.NewUUID(), missioncontrol.Dependencies{
		Drones:   drones,
		Missions: missions,
		Mailer:   new(MockOtpMailer),
		Logger:   discard,
	}, missioncontrol.HandOff{})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, drones, missions
}

func newView(t *testing.T) (*monitoring.View, *MockTelemetryGateway) {
	t.Helper()
	gw := new(MockTelemetryGateway)
	gw.On("Parameters", mock.Anything, mock.Anything).Return(telemetry.Snapshot{}, nil).Maybe()
	gw.On("Geometry", mock.Anything, mock.Anything).Return(telemetry.Geometry{}, nil).Maybe()
	v, err := monitoring.NewView(kernel.NewUUID(), monitoring.Dependencies{
		Telemetry:    gw,
		PollInterval: time.Hour,
		Logger:       discard,
	}, "D1")
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v, gw
}
