// Package towerapi implements the drone and mission ports against the tower
// backend's REST API.
package towerapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
)

// DefaultBaseURL is where the tower backend listens in a local deployment.
const DefaultBaseURL = "http://localhost:5090/api"

var (
	_ ports.DroneGateway   = (*Gateway)(nil)
	_ ports.MissionGateway = (*Gateway)(nil)
)

// Gateway talks to the tower backend.
type Gateway struct {
	client *restclient.Client
	logger *slog.Logger
}

func NewGateway(client *restclient.Client, logger *slog.Logger) (*Gateway, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{client: client, logger: logger.With("component", "tower_api")}, nil
}

func (g *Gateway) ListDeliveryDrones(ctx context.Context) ([]*drone.Drone, error) {
	const op = "list delivery drones"

	var dtos []DroneDTO
	if err := g.client.Get(ctx, op, "/delivery-drones", &dtos); err != nil {
		return nil, err
	}

	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := DtoToDomainDrone(dto)
		if err != nil {
			g.logger.WarnContext(ctx, "Skipping unreadable drone row", "drone_id", dto.DroneID.String(), "error", err)
			continue
		}
		drones = append(drones, d)
	}
	return drones, nil
}

func (g *Gateway) GetDrone(ctx context.Context, droneID string) (*drone.Drone, error) {
	const op = "get drone"

	var dto DroneDTO
	if err := g.client.Get(ctx, op, restclient.Path("drone", droneID), &dto); err != nil {
		return nil, err
	}
	d, err := DtoToDomainDrone(dto)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}
	return d, nil
}

func (g *Gateway) UpdateSourceCoordinates(ctx context.Context, droneID string, source kernel.Location) error {
	if err := source.Validate(); err != nil {
		return err
	}
	return g.client.Post(ctx, "update source coordinates",
		restclient.Path("drone-source-coordinates", droneID), DomainToDroneSource(source), nil)
}

func (g *Gateway) ResolveDestination(ctx context.Context, droneID string) (facility.Resolution, error) {
	const op = "resolve destination"

	var dto DestinationDTO
	if err := g.client.Get(ctx, op, restclient.Path("drone-destination", droneID), &dto); err != nil {
		return facility.Resolution{}, err
	}

	if !dto.DestinationLat.Valid || !dto.DestinationLng.Valid {
		return facility.Resolution{}, errs.NewBusinessError(op,
			"No destination coordinates for this drone", http.StatusOK)
	}
	destination, err := kernel.NewLocation(dto.DestinationLat.Value, dto.DestinationLng.Value)
	if err != nil {
		return facility.Resolution{}, errs.NewTransportError(op, err)
	}

	facilities := make([]*facility.Facility, 0, len(dto.DDTs))
	for _, ddt := range dto.DDTs {
		f, err := DtoToDomainFacility(ddt)
		if err != nil {
			g.logger.WarnContext(ctx, "Skipping unreadable facility", "ddt_name", ddt.Name.String(), "error", err)
			continue
		}
		facilities = append(facilities, f)
	}

	warehouse, err := dto.WarehouseCoords.location()
	if err != nil {
		g.logger.WarnContext(ctx, "Ignoring warehouse coordinates",
			"warehouse", dto.WarehouseName.String(), "error", err)
	}

	res, err := facility.NewResolution(destination, facilities, warehouse)
	if err != nil {
		return facility.Resolution{}, errs.NewTransportError(op, err)
	}
	return res, nil
}

func (g *Gateway) Launch(ctx context.Context, req ports.LaunchRequest) (mission.ControlKey, error) {
	const op = "launch package"

	if err := req.Selection.Validate(); err != nil {
		return "", err
	}
	if err := req.Destination.Validate(); err != nil {
		return "", err
	}

	body := LaunchRequestDTO{
		PackageID:  req.PackageID,
		DDTName:    req.Selection.FacilityName(),
		RackColumn: req.Selection.Rack().String(),
		Latitude:   req.Destination.Lat(),
		Longitude:  req.Destination.Lng(),
	}
	var out LaunchResponseDTO
	if err := g.client.Post(ctx, op, "/launch-package", body, &out); err != nil {
		return "", err
	}
	if out.ControlKey == "" {
		return "", errs.NewTransportError(op, errors.New("answer carries no control key"))
	}
	return mission.ControlKey(out.ControlKey), nil
}

func (g *Gateway) Status(ctx context.Context, packageID string) (mission.Status, error) {
	const op = "package status"

	var out PackageStatusDTO
	if err := g.client.Get(ctx, op, restclient.Path("package-status", packageID), &out); err != nil {
		return mission.Unknown, err
	}
	if out.Status == "" {
		return mission.Ready, nil
	}
	status, err := mission.ParseStatus(out.Status.String())
	if err != nil {
		return mission.Unknown, errs.NewTransportError(op, err)
	}
	return status, nil
}

func (g *Gateway) Reset(ctx context.Context, packageID string, key mission.ControlKey) error {
	return g.client.Post(ctx, "reset package", restclient.Path("reset-package", packageID),
		ResetRequestDTO{ControlKey: string(key)}, nil)
}

func (g *Gateway) Pickup(ctx context.Context, packageID string, selection facility.RackSelection) error {
	if err := selection.Validate(); err != nil {
		return err
	}
	return g.client.Post(ctx, "pickup package", restclient.Path("pickup-package", packageID),
		PickupRequestDTO{DDTName: selection.FacilityName(), RackColumn: selection.Rack().String()}, nil)
}

func (g *Gateway) OtpRecord(ctx context.Context, packageID string) (mission.OtpRecord, error) {
	const op = "get otp data"

	var out OtpDataDTO
	if err := g.client.Get(ctx, op, restclient.Path("get-otp-data", packageID), &out); err != nil {
		return mission.OtpRecord{}, err
	}

	pkg := out.PackageID.String()
	if pkg == "" {
		pkg = packageID
	}
	var rack facility.RackKey
	if out.Rack != "" {
		parsed, err := facility.ParseRackKey(out.Rack.String())
		if err != nil {
			g.logger.WarnContext(ctx, "Ignoring unreadable rack in OTP data", "package_id", pkg, "rack", out.Rack.String())
		} else {
			rack = parsed
		}
	}

	rec, err := mission.NewOtpRecord(pkg, out.MailID.String(), out.OTP.String(), rack)
	if err != nil {
		return mission.OtpRecord{}, errs.NewTransportError(op, fmt.Errorf("incomplete OTP data: %w", err))
	}
	return rec, nil
}
