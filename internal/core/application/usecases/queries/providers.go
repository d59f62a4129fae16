// Package queries contains read operations over live sessions and views.
// Queries return read models and never change mission state, except that
// reading counts as operator activity for the idle reapers.
package queries

import (
	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
)

type (
	// SessionProvider looks up live mission-control sessions.
	SessionProvider interface {
		Get(id kernel.UUID) (*missioncontrol.Session, error)
	}

	// ViewProvider looks up live telemetry views.
	ViewProvider interface {
		Get(id kernel.UUID) (*monitoring.View, error)
	}
)
