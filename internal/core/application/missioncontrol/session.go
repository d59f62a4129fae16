package missioncontrol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/periodic"
)

// DefaultPollInterval is the status polling period while a mission is Processing.
const DefaultPollInterval = 2 * time.Second

// ErrSessionClosed is the cause reported when an operation reaches a session
// that was closed or evicted.
var ErrSessionClosed = errors.New("session is closed")

// Dependencies are the collaborators shared by all sessions.
type Dependencies struct {
	Drones   ports.DroneGateway
	Missions ports.MissionGateway
	Mailer   ports.OtpMailer

	PollInterval time.Duration
	Logger       *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (d Dependencies) withDefaults() (Dependencies, error) {
	switch {
	case d.Drones == nil:
		return d, errs.NewValueIsRequiredError("drone gateway")
	case d.Missions == nil:
		return d, errs.NewValueIsRequiredError("mission gateway")
	case d.Mailer == nil:
		return d, errs.NewValueIsRequiredError("otp mailer")
	}
	if d.PollInterval <= 0 {
		d.PollInterval = DefaultPollInterval
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d, nil
}

// HandOff carries choices made before entering mission control, typically on
// the monitoring screen. The drone is auto-selected once the drone list is
// loaded, and the rack is selected once its facility is known.
type HandOff struct {
	DroneID string
	Rack    facility.RackKey
}

// Session is one operator's mission-control context.
type Session struct {
	id     kernel.UUID
	deps   Dependencies
	logger *slog.Logger

	// opMu serialises operator actions; it may be held across network calls.
	opMu sync.Mutex

	// mu guards everything below and is never held across a network call.
	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	closed     bool
	lastActive time.Time

	drones       []*drone.Drone
	selected     *drone.Drone
	selectionGen uint64
	resolution   *facility.Resolution
	racks        *RackAllocator
	prompt       *CoordinatePrompt
	handOff      HandOff

	mission  *mission.Mission
	poller   *periodic.Task
	otpError string

	// notice is the last operator-facing status line.
	notice string
}

// NewSession creates an active session with a Ready mission.
func NewSession(id kernel.UUID, deps Dependencies, handOff HandOff) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:         id,
		deps:       deps,
		logger:     deps.Logger.With("component", "mission_control", "session_id", id.String()),
		ctx:        ctx,
		cancel:     cancel,
		lastActive: deps.Clock(),
		racks:      NewRackAllocator(),
		handOff:    handOff,
		mission:    mission.NewMission(1),
	}
	if handOff.Rack != "" {
		s.notice = fmt.Sprintf("Returned from monitoring - %s selected", handOff.Rack.Label())
	}
	return s, nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

// LastActive is the time of the last operator interaction.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close stops the status poller, cancels background work and rejects further
// operations. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopPollerLocked()
	s.cancel()
	s.logger.Info("Mission control session closed")
}

// begin serialises an operator action. The returned func releases it.
func (s *Session) begin() (func(), error) {
	s.opMu.Lock()

	s.mu.Lock()
	closed := s.closed
	s.lastActive = s.deps.Clock()
	s.mu.Unlock()

	if closed {
		s.opMu.Unlock()
		return nil, errs.NewObjectNotFoundErrorWithCause("sessionId", s.id.String(), ErrSessionClosed)
	}
	return s.opMu.Unlock, nil
}

// isCurrentLocked reports whether a result issued for (epoch, packageID) may
// still be applied.
func (s *Session) isCurrentLocked(epoch uint64, packageID string) bool {
	return !s.closed && s.mission.Epoch() == epoch && s.mission.PackageID() == packageID
}

// abandonMissionLocked drops local tracking of the current mission without
// telling the backend. Used when the drone changes under it.
func (s *Session) abandonMissionLocked() {
	s.stopPollerLocked()
	if s.mission.PackageID() != "" || s.mission.Status() != mission.Ready {
		s.logger.Info("Mission tracking abandoned",
			"package_id", s.mission.PackageID(), "status", s.mission.Status().String())
		s.mission = s.mission.Reset()
	}
	s.otpError = ""
}

func (s *Session) resetMissionLocked() {
	s.stopPollerLocked()
	s.mission = s.mission.Reset()
	s.otpError = ""
}

func (s *Session) findDroneLocked(droneID string) *drone.Drone {
	for _, d := range s.drones {
		if d.ID() == droneID {
			return d
		}
	}
	return nil
}
