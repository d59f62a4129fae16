// Package ports defines the contracts between the mission-control core and
// the remote collaborators it drives: the tower backend, the monitoring
// backend and the OTP mail service. Adapters under internal/adapters/out
// implement them; tests replace them with testify mocks.
package ports

import (
	"context"

	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
)

// DroneGateway reads and updates drones on the tower backend.
//
// Errors follow the errs taxonomy: a rejection carrying the backend's own
// message is an *errs.BusinessError, anything that prevented a readable answer
// is an *errs.TransportError.
type DroneGateway interface {
	// ListDeliveryDrones returns the drones that have packages assigned.
	ListDeliveryDrones(ctx context.Context) ([]*drone.Drone, error)

	// GetDrone returns the full drone record including its grippers.
	GetDrone(ctx context.Context, droneID string) (*drone.Drone, error)

	// UpdateSourceCoordinates persists the drone's source position. Exactly one
	// request is issued per call.
	UpdateSourceCoordinates(ctx context.Context, droneID string, source kernel.Location) error

	// ResolveDestination returns the destination of the drone's assignment and
	// the DDT facilities reachable there, with their current rack occupancy.
	//
	// Example:
	//   res, err := gw.ResolveDestination(ctx, "D1")
	//   if err != nil {
	//       return fmt.Errorf("resolve destination: %w", err)
	//   }
	//   first := res.Facilities()[0] // default selection
	ResolveDestination(ctx context.Context, droneID string) (facility.Resolution, error)
}
