package monitorapi

import (
	"time"

	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
)

// ParametersDTO is the answer of GET /drone-parameters/{id}.
type ParametersDTO struct {
	Parameters *ParameterValuesDTO `json:"parameters"`
}

// ParameterValuesDTO carries every flight parameter the monitoring backend
// relays. Any field may be "N/A".
type ParameterValuesDTO struct {
	Latitude    restclient.Float `json:"latitude"`
	Longitude   restclient.Float `json:"longitude"`
	AltitudeRel restclient.Float `json:"altitude_rel"`
	AltitudeAbs restclient.Float `json:"altitude_abs"`

	BatteryLevel   restclient.Float `json:"battery_level"`
	BatteryVoltage restclient.Float `json:"battery_voltage"`
	BatteryCurrent restclient.Float `json:"battery_current"`

	Airspeed    restclient.Float `json:"airspeed"`
	Groundspeed restclient.Float `json:"groundspeed"`
	Heading     restclient.Float `json:"heading"`

	Pitch restclient.Float `json:"pitch"`
	Roll  restclient.Float `json:"roll"`
	Yaw   restclient.Float `json:"yaw"`

	SatellitesVisible restclient.Float `json:"satellites_visible"`
	FixType           restclient.Float `json:"fix_type"`
	EkfOK             restclient.Text  `json:"ekf_ok"`

	Mode          restclient.Text  `json:"mode"`
	Armed         restclient.Text  `json:"armed"`
	IsArmable     restclient.Text  `json:"is_armable"`
	LastHeartbeat restclient.Float `json:"last_heartbeat"`
}

func DtoToDomainSnapshot(droneID string, dto ParameterValuesDTO, receivedAt time.Time) telemetry.Snapshot {
	s := telemetry.UnknownSnapshot(droneID)
	s.ReceivedAt = receivedAt

	s.Latitude = floatReading(dto.Latitude)
	s.Longitude = floatReading(dto.Longitude)
	s.AltitudeRel = floatReading(dto.AltitudeRel)
	s.AltitudeAbs = floatReading(dto.AltitudeAbs)

	s.BatteryLevel = floatReading(dto.BatteryLevel)
	s.BatteryVoltage = floatReading(dto.BatteryVoltage)
	s.BatteryCurrent = floatReading(dto.BatteryCurrent)

	s.Airspeed = floatReading(dto.Airspeed)
	s.Groundspeed = floatReading(dto.Groundspeed)
	s.Heading = floatReading(dto.Heading)

	s.Pitch = floatReading(dto.Pitch)
	s.Roll = floatReading(dto.Roll)
	s.Yaw = floatReading(dto.Yaw)

	s.SatellitesVisible = intReading(dto.SatellitesVisible)
	s.FixType = intReading(dto.FixType)
	s.EkfOK = boolReading(dto.EkfOK)

	if dto.Mode != "" {
		s.Mode = telemetry.Known(dto.Mode.String())
	}
	s.Armed = boolReading(dto.Armed)
	s.IsArmable = boolReading(dto.IsArmable)
	s.LastHeartbeat = floatReading(dto.LastHeartbeat)

	return s
}

func floatReading(f restclient.Float) telemetry.Reading[float64] {
	if !f.Valid {
		return telemetry.Unknown[float64]()
	}
	return telemetry.Known(f.Value)
}

func intReading(f restclient.Float) telemetry.Reading[int] {
	if !f.Valid {
		return telemetry.Unknown[int]()
	}
	return telemetry.Known(int(f.Value))
}

func boolReading(t restclient.Text) telemetry.Reading[bool] {
	switch t {
	case "true", "True", "1":
		return telemetry.Known(true)
	case "false", "False", "0":
		return telemetry.Known(false)
	}
	return telemetry.Unknown[bool]()
}

// MonitoringDTO is the answer of GET /drone-monitoring/{id}.
type MonitoringDTO struct {
	Drone       *MonitoredDroneDTO `json:"drone"`
	Source      *PointDTO          `json:"source"`
	Destination *PointDTO          `json:"destination"`
	Warehouse   *PointDTO          `json:"warehouse"`
}

type MonitoredDroneDTO struct {
	DroneID      restclient.Text  `json:"drone_id"`
	DroneName    restclient.Text  `json:"drone_name"`
	LastKnownLat restclient.Float `json:"last_known_lat"`
	LastKnownLng restclient.Float `json:"last_known_lng"`
}

type PointDTO struct {
	Latitude  restclient.Float `json:"latitude"`
	Longitude restclient.Float `json:"longitude"`
}

func (p *PointDTO) location() *kernel.Location {
	if p == nil {
		return nil
	}
	return point(p.Latitude, p.Longitude)
}

// point treats a zero coordinate like a missing one, as the map renderer
// always has: a marker at 0,0 is never a real position here.
func point(lat restclient.Float, lng restclient.Float) *kernel.Location {
	if !lat.Valid || !lng.Valid || lat.Value == 0 || lng.Value == 0 {
		return nil
	}
	loc, err := kernel.NewLocation(lat.Value, lng.Value)
	if err != nil {
		return nil
	}
	return &loc
}

func DtoToDomainGeometry(droneID string, dto MonitoringDTO) telemetry.Geometry {
	g := telemetry.Geometry{
		DroneID:     droneID,
		Source:      dto.Source.location(),
		Destination: dto.Destination.location(),
		Warehouse:   dto.Warehouse.location(),
	}
	if dto.Drone != nil {
		if id := dto.Drone.DroneID.String(); id != "" {
			g.DroneID = id
		}
		g.DroneName = dto.Drone.DroneName.String()
		g.LastKnown = point(dto.Drone.LastKnownLat, dto.Drone.LastKnownLng)
	}
	return g
}

type CameraDTO struct {
	CameraURL restclient.Text `json:"camera_url"`
}

type CommandResultDTO struct {
	Status  restclient.Text `json:"status"`
	Message restclient.Text `json:"message"`
}
