package ports

import (
	"context"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
)

// LaunchRequest is everything the backend needs to start a delivery.
type LaunchRequest struct {
	PackageID   string
	Selection   facility.RackSelection
	Destination kernel.Location
}

// MissionGateway drives the mission lifecycle on the tower backend.
type MissionGateway interface {
	// Launch reserves the selected rack and starts the delivery. The returned
	// control key is required to reset the same mission.
	Launch(ctx context.Context, req LaunchRequest) (mission.ControlKey, error)

	// Status returns the backend's view of the package's mission.
	Status(ctx context.Context, packageID string) (mission.Status, error)

	// Reset abandons the mission. An empty key is sent as is; the backend
	// decides what that means.
	Reset(ctx context.Context, packageID string, key mission.ControlKey) error

	// Pickup tells the backend the customer collected the package so the rack
	// can be freed.
	Pickup(ctx context.Context, packageID string, selection facility.RackSelection) error

	// OtpRecord fetches the pickup code the backend generated on delivery,
	// along with the rack it actually granted.
	OtpRecord(ctx context.Context, packageID string) (mission.OtpRecord, error)
}
