// Package commands contains operator operations that change session or view
// state. Every command follows the same pattern: construction validates the
// input, Validate rejects zero values, and the handler resolves the target
// session or view before acting on it.
package commands

import (
	"time"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
)

// Registry interfaces give handlers access to live sessions and views.
type (
	// SessionRegistry owns mission-control sessions.
	SessionRegistry interface {
		Create(id kernel.UUID, handOff missioncontrol.HandOff) (*missioncontrol.Session, error)
		Get(id kernel.UUID) (*missioncontrol.Session, error)
		Remove(id kernel.UUID) error
		ReapIdle(now time.Time, idle time.Duration) int
	}

	// ViewRegistry owns telemetry views.
	ViewRegistry interface {
		Open(id kernel.UUID, droneID string) (*monitoring.View, error)
		Get(id kernel.UUID) (*monitoring.View, error)
		Remove(id kernel.UUID) error
		ReapIdle(now time.Time, idle time.Duration) int
	}
)
