package telemetry

import (
	"time"

	"missionctl/internal/core/domain/model/kernel"
)

// Snapshot is one point-in-time reading of a drone's flight parameters.
type Snapshot struct {
	DroneID    string    `json:"drone_id"`
	ReceivedAt time.Time `json:"received_at"`

	Latitude    Reading[float64] `json:"latitude"`
	Longitude   Reading[float64] `json:"longitude"`
	AltitudeRel Reading[float64] `json:"altitude_rel"`
	AltitudeAbs Reading[float64] `json:"altitude_abs"`

	BatteryLevel   Reading[float64] `json:"battery_level"`
	BatteryVoltage Reading[float64] `json:"battery_voltage"`
	BatteryCurrent Reading[float64] `json:"battery_current"`

	Airspeed    Reading[float64] `json:"airspeed"`
	Groundspeed Reading[float64] `json:"groundspeed"`
	Heading     Reading[float64] `json:"heading"`

	Pitch Reading[float64] `json:"pitch"`
	Roll  Reading[float64] `json:"roll"`
	Yaw   Reading[float64] `json:"yaw"`

	SatellitesVisible Reading[int]  `json:"satellites_visible"`
	FixType           Reading[int]  `json:"fix_type"`
	EkfOK             Reading[bool] `json:"ekf_ok"`

	Mode          Reading[string]  `json:"mode"`
	Armed         Reading[bool]    `json:"armed"`
	IsArmable     Reading[bool]    `json:"is_armable"`
	LastHeartbeat Reading[float64] `json:"last_heartbeat"`
}

// UnknownSnapshot is the state shown before the first successful fetch and
// after a drone switch: every reading Unknown.
func UnknownSnapshot(droneID string) Snapshot {
	return Snapshot{DroneID: droneID}
}

// Position returns the live drone position when both coordinates are known
// and form a valid location.
func (s Snapshot) Position() (kernel.Location, bool) {
	lat, latOK := s.Latitude.Value()
	lng, lngOK := s.Longitude.Value()
	if !latOK || !lngOK {
		return kernel.Location{}, false
	}
	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return kernel.Location{}, false
	}
	return loc, true
}
