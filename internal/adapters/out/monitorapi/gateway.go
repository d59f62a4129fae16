// Package monitorapi implements the telemetry port against the
// drone-monitoring backend.
package monitorapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
)

// DefaultBaseURL is where the monitoring backend listens in a local deployment.
const DefaultBaseURL = "http://localhost:5095/api"

var _ ports.TelemetryGateway = (*Gateway)(nil)

type Gateway struct {
	client *restclient.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewGateway(client *restclient.Client, logger *slog.Logger) (*Gateway, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client: client,
		logger: logger.With("component", "monitor_api"),
		now:    time.Now,
	}, nil
}

// Parameters fetches live flight parameters. A body without a parameters
// object yields an all-unknown snapshot rather than an error.
func (g *Gateway) Parameters(ctx context.Context, droneID string) (telemetry.Snapshot, error) {
	var out ParametersDTO
	if err := g.client.Get(ctx, "drone parameters", restclient.Path("drone-parameters", droneID), &out); err != nil {
		return telemetry.Snapshot{}, err
	}
	if out.Parameters == nil {
		g.logger.DebugContext(ctx, "Backend sent no parameters", "drone_id", droneID)
		s := telemetry.UnknownSnapshot(droneID)
		s.ReceivedAt = g.now()
		return s, nil
	}
	return DtoToDomainSnapshot(droneID, *out.Parameters, g.now()), nil
}

func (g *Gateway) Geometry(ctx context.Context, droneID string) (telemetry.Geometry, error) {
	var out MonitoringDTO
	if err := g.client.Get(ctx, "drone monitoring", restclient.Path("drone-monitoring", droneID), &out); err != nil {
		return telemetry.Geometry{}, err
	}
	return DtoToDomainGeometry(droneID, out), nil
}

func (g *Gateway) CameraURL(ctx context.Context, droneID string) (string, error) {
	const op = "drone camera"

	var out CameraDTO
	if err := g.client.Get(ctx, op, restclient.Path("drone-camera", droneID), &out); err != nil {
		return "", err
	}
	if out.CameraURL == "" {
		return "", errs.NewTransportError(op, errors.New("answer carries no camera url"))
	}
	return out.CameraURL.String(), nil
}

// SendCommand posts the command and returns the backend's confirmation. An
// answer whose status is not "success" is a rejection.
func (g *Gateway) SendCommand(ctx context.Context, droneID string, command telemetry.Command) (string, error) {
	const op = "drone control"

	var out CommandResultDTO
	err := g.client.Post(ctx, op, restclient.Path("drone-control", droneID, command.String()), nil, &out)
	if err != nil {
		return "", err
	}
	if out.Status != "success" {
		return "", errs.NewBusinessError(op, "Command failed", http.StatusOK)
	}
	g.logger.InfoContext(ctx, "Drone command accepted", "drone_id", droneID, "command", command.String())
	return out.Message.String(), nil
}
