package missioncontrol_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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
	args := m.Called(ctx, droneID, source)
	return args.Error(0)
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
	args := m.Called(ctx, packageID, key)
	return args.Error(0)
}

func (m *MockMissionGateway) Pickup(ctx context.Context, packageID string, selection facility.RackSelection) error {
	args := m.Called(ctx, packageID, selection)
	return args.Error(0)
}

func (m *MockMissionGateway) OtpRecord(ctx context.Context, packageID string) (mission.OtpRecord, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).(mission.OtpRecord), args.Error(1)
}

type MockOtpMailer struct{ mock.Mock }

func (m *MockOtpMailer) SendOtp(ctx context.Context, email ports.OtpEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// fakeClock is a settable clock shared by a test and the code under test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	drones   *MockDroneGateway
	missions *MockMissionGateway
	mailer   *MockOtpMailer
	clock    *fakeClock
	deps     missioncontrol.Dependencies
}

func newFixture() *fixture {
	f := &fixture{
		drones:   new(MockDroneGateway),
		missions: new(MockMissionGateway),
		mailer:   new(MockOtpMailer),
		clock:    newFakeClock(),
	}
	f.deps = missioncontrol.Dependencies{
		Drones:       f.drones,
		Missions:     f.missions,
		Mailer:       f.mailer,
		PollInterval: 5 * time.Millisecond,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:        f.clock.Now,
	}
	return f
}

func (f *fixture) session(t *testing.T, handOff missioncontrol.HandOff) *missioncontrol.Session {
	t.Helper()
	s, err := missioncontrol.NewSession(kernel.NewUUID(), f.deps, handOff)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func location(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return l
}

// newDrone builds a drone carrying PKG-1 in its first gripper.
func newDrone(t *testing.T, id string, source *kernel.Location) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(id, drone.Attributes{Name: "Hawk " + id, Model: "X8", Type: "quad", Battery: "6S"},
		source, []string{"PKG-1", "", "PKG-3"})
	require.NoError(t, err)
	return d
}

// facilityF has 4 racks with rack_01, rack_03 and rack_04 occupied.
func facilityF(t *testing.T) *facility.Facility {
	t.Helper()
	f, err := facility.NewFacility("1", "F", 4, facility.StatusActive, map[facility.RackKey]string{
		"rack_01": "PKG-A",
		"rack_03": "PKG-B",
		"rack_04": "PKG-C",
	})
	require.NoError(t, err)
	return f
}

func resolution(t *testing.T, facilities ...*facility.Facility) facility.Resolution {
	t.Helper()
	wh := location(t, 12.95, 77.55)
	res, err := facility.NewResolution(location(t, 12.9716, 77.5946), facilities, &wh)
	require.NoError(t, err)
	return res
}

// expectSelection wires the detail and destination lookups made when a drone
// becomes selected.
func (f *fixture) expectSelection(t *testing.T, d *drone.Drone, fac *facility.Facility) {
	t.Helper()
	f.drones.On("GetDrone", mock.Anything, d.ID()).Return(d.Clone(), nil)
	f.drones.On("ResolveDestination", mock.Anything, d.ID()).Return(resolution(t, fac), nil)
}

// readyToLaunch returns a session with D1 selected, PKG-1 chosen and rack_02 at F selected.
func (f *fixture) readyToLaunch(t *testing.T) *missioncontrol.Session {
	t.Helper()
	src := location(t, 12.34, 56.78)
	d1 := newDrone(t, "D1", &src)
	f.drones.On("ListDeliveryDrones", mock.Anything).Return([]*drone.Drone{d1}, nil)
	f.expectSelection(t, d1, facilityF(t))

	s := f.session(t, missioncontrol.HandOff{})
	ctx := context.Background()
	require.NoError(t, s.RefreshDrones(ctx))
	require.NoError(t, s.RequestSelect(ctx, "D1"))
	require.NoError(t, s.SelectPackage("PKG-1"))
	require.NoError(t, s.SelectRack("rack_02"))
	return s
}

func otpRecord(t *testing.T) mission.OtpRecord {
	t.Helper()
	rec, err := mission.NewOtpRecord("PKG-1", "customer@example.com", "482193", "rack_02")
	require.NoError(t, err)
	return rec
}
