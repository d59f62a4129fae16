package services

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
)

// ErrNoKnownPoint is returned when neither the live position nor any point of
// the mission geometry is known, so there is nothing to center the map on.
var ErrNoKnownPoint = errors.New("no known point to center the map on")

// ViewportCalculator is a domain service that decides where the map looks.
//
// Business rules:
//   - The drone's live position takes precedence over its last-known position
//   - One known point: center on it at telemetry.ZoomSingle
//   - Several known points: center on their arithmetic mean at telemetry.ZoomMulti
//   - Source, destination and warehouse contribute when present
//
// Example usage:
//
//	calc := NewViewportCalculator()
//	vp, err := calc.Calculate(snapshot, geometry)
//	if errors.Is(err, ErrNoKnownPoint) {
//	    // keep the previous viewport
//	    return
//	}
//	fmt.Println(vp.Center, vp.Zoom)
type ViewportCalculator struct{}

func NewViewportCalculator() ViewportCalculator {
	return ViewportCalculator{}
}

// Calculate derives the viewport from a telemetry snapshot and a geometry.
//
// Parameters:
//   - snapshot: the latest live reading; its position is used when known
//   - geometry: the mission-data snapshot for the same drone
//
// Returns:
//   - telemetry.Viewport: the center and zoom to display
//   - error: ErrNoKnownPoint when no point is known
func (c ViewportCalculator) Calculate(snapshot telemetry.Snapshot, geometry telemetry.Geometry) (telemetry.Viewport, error) {
	points := c.knownPoints(snapshot, geometry)

	switch len(points) {
	case 0:
		return telemetry.Viewport{}, ErrNoKnownPoint
	case 1:
		return telemetry.Viewport{Center: points[0], Zoom: telemetry.ZoomSingle}, nil
	}

	center, err := kernel.MeanLocation(points...)
	if err != nil {
		return telemetry.Viewport{}, err
	}
	return telemetry.Viewport{Center: center, Zoom: telemetry.ZoomMulti}, nil
}

func (c ViewportCalculator) knownPoints(snapshot telemetry.Snapshot, geometry telemetry.Geometry) []kernel.Location {
	points := make([]kernel.Location, 0, 4)

	if live, ok := snapshot.Position(); ok {
		points = append(points, live)
	} else if geometry.LastKnown != nil {
		points = append(points, *geometry.LastKnown)
	}

	for _, p := range []*kernel.Location{geometry.Source, geometry.Destination, geometry.Warehouse} {
		if p != nil {
			points = append(points, *p)
		}
	}
	return points
}
