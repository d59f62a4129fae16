package missioncontrol

import (
	"log/slog"
	"time"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSessionLimit bounds the number of live sessions.
const DefaultSessionLimit = 256

// Registry owns the live sessions. It is bounded: creating a session beyond
// the limit evicts the least recently used one, and every removal path closes
// the evicted session so its poller stops.
type Registry struct {
	deps     Dependencies
	sessions *lru.Cache[string, *Session]
	logger   *slog.Logger
}

// NewRegistry creates the registry of operator sessions.
//
// Parameters:
//   - deps: gateways and settings shared by every session; missing optional
//     fields get their defaults
//   - limit: most sessions kept at once, DefaultSessionLimit when not positive.
//     The least recently used session is closed when the limit is exceeded.
//
// Example:
//
//	registry, err := NewRegistry(Dependencies{Drones: tower, Missions: tower, Mailer: mailer}, 0)
//	if err != nil {
//	    return fmt.Errorf("session registry: %w", err)
//	}
//	session, err := registry.Create(kernel.NewUUID(), HandOff{})
func NewRegistry(deps Dependencies, limit int) (*Registry, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	logger := deps.Logger.With("component", "session_registry")
	cache, err := lru.NewWithEvict(limit, func(id string, s *Session) {
		s.Close()
		logger.Info("Session removed", "session_id", id)
	})
	if err != nil {
		return nil, err
	}
	return &Registry{deps: deps, sessions: cache, logger: logger}, nil
}

// Create activates a new session.
func (r *Registry) Create(id kernel.UUID, handOff HandOff) (*Session, error) {
	if r.sessions.Contains(id.String()) {
		return nil, errs.NewValueIsInvalidError("sessionId")
	}
	s, err := NewSession(id, r.deps, handOff)
	if err != nil {
		return nil, err
	}
	r.sessions.Add(id.String(), s)
	r.logger.Info("Session created", "session_id", id.String(), "hand_off_drone", handOff.DroneID)
	return s, nil
}

// Get returns the session and marks it recently used. An unknown or evicted
// id is an ObjectNotFound error.
func (r *Registry) Get(id kernel.UUID) (*Session, error) {
	s, ok := r.sessions.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}
	return s, nil
}

// Remove closes and forgets the session.
func (r *Registry) Remove(id kernel.UUID) error {
	if !r.sessions.Remove(id.String()) {
		return errs.NewObjectNotFoundError("sessionId", id.String())
	}
	return nil
}

// ReapIdle closes sessions without operator activity for at least idle.
func (r *Registry) ReapIdle(now time.Time, idle time.Duration) int {
	reaped := 0
	for _, id := range r.sessions.Keys() {
		s, ok := r.sessions.Peek(id)
		if !ok {
			continue
		}
		if now.Sub(s.LastActive()) >= idle && r.sessions.Remove(id) {
			reaped++
		}
	}
	return reaped
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// CloseAll closes every session, on shutdown.
func (r *Registry) CloseAll() {
	r.sessions.Purge()
}
