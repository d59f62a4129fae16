package monitoring

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/core/domain/services"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/periodic"

	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval is the telemetry refresh period.
const DefaultPollInterval = 2 * time.Second

// ErrViewClosed is the cause reported when an operation reaches a closed view.
var ErrViewClosed = errors.New("view is closed")

// Dependencies are the collaborators shared by all views.
type Dependencies struct {
	Telemetry ports.TelemetryGateway

	PollInterval time.Duration
	Logger       *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (d Dependencies) withDefaults() (Dependencies, error) {
	if d.Telemetry == nil {
		return d, errs.NewValueIsRequiredError("telemetry gateway")
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

// View is a live telemetry view of one drone.
type View struct {
	id         kernel.UUID
	deps       Dependencies
	logger     *slog.Logger
	calculator services.ViewportCalculator

	mu         sync.Mutex
	closed     bool
	lastActive time.Time
	droneID    string
	gen        uint64
	snapshot   telemetry.Snapshot
	geometry   *telemetry.Geometry
	viewport   *telemetry.Viewport
	paramsErr  string
	geomErr    string
	updatedAt  time.Time
	task       *periodic.Task

	subscribers map[uint64]chan State
	nextSub     uint64
}

// NewView opens a view on droneID and starts polling right away.
func NewView(id kernel.UUID, deps Dependencies, droneID string) (*View, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	droneID = strings.TrimSpace(droneID)
	if droneID == "" {
		return nil, errs.NewValueIsRequiredError("drone_id")
	}

	v := &View{
		id:          id,
		deps:        deps,
		logger:      deps.Logger.With("component", "telemetry_view", "view_id", id.String()),
		calculator:  services.NewViewportCalculator(),
		lastActive:  deps.Clock(),
		subscribers: make(map[uint64]chan State),
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.followLocked(droneID)
	return v, nil
}

func (v *View) ID() kernel.UUID {
	return v.id
}

func (v *View) LastActive() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastActive
}

// SwitchDrone makes the view follow another drone. Readings reset to Unknown
// until the new drone's first fetch completes.
func (v *View) SwitchDrone(droneID string) error {
	droneID = strings.TrimSpace(droneID)
	if droneID == "" {
		return errs.NewValueIsRequiredError("drone_id")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.touchLocked(); err != nil {
		return err
	}
	v.logger.Info("Switching telemetry view", "from", v.droneID, "to", droneID)
	v.followLocked(droneID)
	v.publishLocked()
	return nil
}

// Close stops polling and closes every subscription. It is idempotent.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.stopTaskLocked()
	for id, ch := range v.subscribers {
		close(ch)
		delete(v.subscribers, id)
	}
	v.logger.Info("Telemetry view closed", "drone_id", v.droneID)
}

// CameraURL returns the video feed of the followed drone.
func (v *View) CameraURL(ctx context.Context) (string, error) {
	droneID, err := v.currentDrone()
	if err != nil {
		return "", err
	}
	url, err := v.deps.Telemetry.CameraURL(ctx, droneID)
	if err != nil {
		return "", err
	}
	return url, nil
}

// SendCommand forwards an operator command to the followed drone and returns
// the backend's confirmation message.
func (v *View) SendCommand(ctx context.Context, command string) (string, error) {
	cmd, err := telemetry.ParseCommand(command)
	if err != nil {
		return "", err
	}
	droneID, err := v.currentDrone()
	if err != nil {
		return "", err
	}

	msg, err := v.deps.Telemetry.SendCommand(ctx, droneID, cmd)
	if err != nil {
		v.logger.WarnContext(ctx, "Drone command failed", "drone_id", droneID, "command", cmd.String(), "error", err)
		return "", err
	}
	v.logger.InfoContext(ctx, "Drone command sent", "drone_id", droneID, "command", cmd.String())
	return msg, nil
}

// Subscribe returns a channel that receives the view state after every
// change, starting with the current one. The channel holds only the latest
// state. It is closed by cancel or when the view closes.
func (v *View) Subscribe() (<-chan State, func(), error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.touchLocked(); err != nil {
		return nil, nil, err
	}
	id := v.nextSub
	v.nextSub++
	ch := make(chan State, 1)
	ch <- v.stateLocked()
	v.subscribers[id] = ch

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if c, ok := v.subscribers[id]; ok {
			close(c)
			delete(v.subscribers, id)
		}
	}
	return ch, cancel, nil
}

func (v *View) currentDrone() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.touchLocked(); err != nil {
		return "", err
	}
	return v.droneID, nil
}

func (v *View) touchLocked() error {
	if v.closed {
		return errs.NewObjectNotFoundErrorWithCause("viewId", v.id.String(), ErrViewClosed)
	}
	v.lastActive = v.deps.Clock()
	return nil
}

// followLocked resets the view onto droneID under a new generation and
// restarts polling with an immediate first tick.
func (v *View) followLocked(droneID string) {
	v.stopTaskLocked()

	v.gen++
	v.droneID = droneID
	v.snapshot = telemetry.UnknownSnapshot(droneID)
	v.geometry = nil
	v.viewport = nil
	v.paramsErr = ""
	v.geomErr = ""

	gen := v.gen
	v.task = periodic.NewTask("telemetry_poller", v.deps.PollInterval, func(ctx context.Context) {
		v.tick(ctx, gen, droneID)
	}, v.logger)
	v.task.Start(true)
}

func (v *View) stopTaskLocked() {
	if v.task != nil {
		v.task.Stop()
		v.task = nil
	}
}

// tick fetches parameters and geometry in parallel. Each fetch applies its
// own result, so one failing never cancels or blanks the other. A failed
// parameters fetch turns every reading Unknown; the last geometry is kept.
func (v *View) tick(ctx context.Context, gen uint64, droneID string) {
	var g errgroup.Group

	g.Go(func() error {
		snap, err := v.deps.Telemetry.Parameters(ctx, droneID)
		v.mu.Lock()
		defer v.mu.Unlock()
		if !v.isCurrentLocked(ctx, gen) {
			return nil
		}
		if err != nil {
			v.snapshot = telemetry.UnknownSnapshot(droneID)
			v.paramsErr = errs.Message(err)
			return err
		}
		snap.DroneID = droneID
		if snap.ReceivedAt.IsZero() {
			snap.ReceivedAt = v.deps.Clock()
		}
		v.snapshot = snap
		v.paramsErr = ""
		return nil
	})

	g.Go(func() error {
		geom, err := v.deps.Telemetry.Geometry(ctx, droneID)
		v.mu.Lock()
		defer v.mu.Unlock()
		if !v.isCurrentLocked(ctx, gen) {
			return nil
		}
		if err != nil {
			v.geomErr = errs.Message(err)
			return err
		}
		v.geometry = &geom
		v.geomErr = ""
		return nil
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		v.logger.WarnContext(ctx, "Telemetry fetch failed, retrying on next tick", "drone_id", droneID, "error", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.isCurrentLocked(ctx, gen) {
		return
	}
	if v.geometry != nil {
		vp, err := v.calculator.Calculate(v.snapshot, *v.geometry)
		switch {
		case err == nil:
			v.viewport = &vp
		case errors.Is(err, services.ErrNoKnownPoint):
			v.logger.DebugContext(ctx, "No known point for viewport", "drone_id", droneID)
		default:
			v.logger.WarnContext(ctx, "Viewport calculation failed", "drone_id", droneID, "error", err)
		}
	}
	v.updatedAt = v.deps.Clock()
	v.publishLocked()
}

func (v *View) isCurrentLocked(ctx context.Context, gen uint64) bool {
	return ctx.Err() == nil && !v.closed && v.gen == gen
}

// publishLocked hands the latest state to every subscriber, replacing a
// state the subscriber has not read yet. A view with subscribers counts as
// active.
func (v *View) publishLocked() {
	if len(v.subscribers) == 0 {
		return
	}
	v.lastActive = v.deps.Clock()
	st := v.stateLocked()
	for _, ch := range v.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}
