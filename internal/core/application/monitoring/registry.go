package monitoring

import (
	"log/slog"
	"time"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultViewLimit bounds the number of open views.
const DefaultViewLimit = 64

// Registry owns the open views. Evicted or removed views are closed so their
// pollers stop.
type Registry struct {
	deps   Dependencies
	views  *lru.Cache[string, *View]
	logger *slog.Logger
}

// NewRegistry creates the registry of telemetry views. At most limit views
// are kept (DefaultViewLimit when not positive); the least recently used one
// is closed to make room.
func NewRegistry(deps Dependencies, limit int) (*Registry, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultViewLimit
	}

	logger := deps.Logger.With("component", "view_registry")
	cache, err := lru.NewWithEvict(limit, func(id string, v *View) {
		v.Close()
		logger.Info("View removed", "view_id", id)
	})
	if err != nil {
		return nil, err
	}
	return &Registry{deps: deps, views: cache, logger: logger}, nil
}

// Open creates a view following droneID.
func (r *Registry) Open(id kernel.UUID, droneID string) (*View, error) {
	if r.views.Contains(id.String()) {
		return nil, errs.NewValueIsInvalidError("viewId")
	}
	v, err := NewView(id, r.deps, droneID)
	if err != nil {
		return nil, err
	}
	r.views.Add(id.String(), v)
	r.logger.Info("View opened", "view_id", id.String(), "drone_id", droneID)
	return v, nil
}

// Get returns the view and marks it recently used.
//
// Returns:
//   - *View: the open view
//   - error: ObjectNotFound when the id is unknown, closed or evicted
func (r *Registry) Get(id kernel.UUID) (*View, error) {
	v, ok := r.views.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("viewId", id.String())
	}
	return v, nil
}

// Remove closes and forgets the view.
func (r *Registry) Remove(id kernel.UUID) error {
	if !r.views.Remove(id.String()) {
		return errs.NewObjectNotFoundError("viewId", id.String())
	}
	return nil
}

// ReapIdle closes views nobody looked at for at least idle. A view with an
// open stream stays active.
func (r *Registry) ReapIdle(now time.Time, idle time.Duration) int {
	reaped := 0
	for _, id := range r.views.Keys() {
		v, ok := r.views.Peek(id)
		if !ok {
			continue
		}
		if now.Sub(v.LastActive()) >= idle && r.views.Remove(id) {
			reaped++
		}
	}
	return reaped
}

// Len is the number of open views.
func (r *Registry) Len() int {
	return r.views.Len()
}

// CloseAll closes every view, on shutdown.
func (r *Registry) CloseAll() {
	r.views.Purge()
}
