package ports

import (
	"context"

	"missionctl/internal/core/domain/model/telemetry"
)

// TelemetryGateway reads live data from the drone-monitoring backend.
type TelemetryGateway interface {
	// Parameters returns the live flight parameters. Fields the backend does
	// not know are Unknown in the snapshot.
	Parameters(ctx context.Context, droneID string) (telemetry.Snapshot, error)

	// Geometry returns the drone's last known position and the source,
	// destination and warehouse of its assignment.
	Geometry(ctx context.Context, droneID string) (telemetry.Geometry, error)

	// CameraURL returns the URL of the drone's video feed.
	CameraURL(ctx context.Context, droneID string) (string, error)

	// SendCommand forwards an operator command and
	// returns the backend's confirmation message.
	SendCommand(ctx context.Context, droneID string, command telemetry.Command) (string, error)
}
