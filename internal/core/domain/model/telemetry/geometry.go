package telemetry

import (
	"missionctl/internal/core/domain/model/kernel"
)

// Geometry is the mission-data snapshot for a drone: where it was last seen
// and the points of its current assignment. Any point may be missing.
type Geometry struct {
	DroneID   string
	DroneName string

	LastKnown   *kernel.Location
	Source      *kernel.Location
	Destination *kernel.Location
	Warehouse   *kernel.Location
}

const (
	// ZoomSingle is used when the map centers on one known point.
	ZoomSingle = 15

	// ZoomMulti is used when the map centers on the mean of several points.
	ZoomMulti = 12
)

// Viewport is the map focal point and zoom level.
type Viewport struct {
	Center kernel.Location
	Zoom   int
}
