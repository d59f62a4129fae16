package monitoring

import (
	"time"

	"missionctl/internal/core/domain/model/telemetry"
)

// State is the read model of a view.
type State struct {
	ID              string
	DroneID         string
	Generation      uint64
	Snapshot        telemetry.Snapshot
	Geometry        *telemetry.Geometry
	Viewport        *telemetry.Viewport
	ParametersError string
	GeometryError   string
	UpdatedAt       time.Time
}

// State returns the current read model and counts as operator activity.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.closed {
		v.lastActive = v.deps.Clock()
	}
	return v.stateLocked()
}

func (v *View) stateLocked() State {
	st := State{
		ID:              v.id.String(),
		DroneID:         v.droneID,
		Generation:      v.gen,
		Snapshot:        v.snapshot,
		ParametersError: v.paramsErr,
		GeometryError:   v.geomErr,
		UpdatedAt:       v.updatedAt,
	}
	if v.geometry != nil {
		g := *v.geometry
		st.Geometry = &g
	}
	if v.viewport != nil {
		vp := *v.viewport
		st.Viewport = &vp
	}
	return st
}
