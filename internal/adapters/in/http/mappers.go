package http

import (
	"encoding/json"
	"fmt"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/generated/servers"

	"github.com/google/uuid"
)

func toSession(st missioncontrol.State) (servers.Session, error) {
	id, err := uuid.Parse(st.ID)
	if err != nil {
		return servers.Session{}, fmt.Errorf("session id %q: %w", st.ID, err)
	}

	session := servers.Session{
		Id:          id,
		LastActive:  st.LastActive,
		Notice:      optional(st.Notice),
		Drones:      make([]servers.Drone, len(st.Drones)),
		Facilities:  make([]servers.Facility, len(st.Facilities)),
		Destination: toLocation(st.Destination),
		Warehouse:   toLocation(st.Warehouse),
		Mission:     toMission(st.Mission),

		SelectedFacility: optional(st.SelectedFacility),
		SelectedRack:     optional(st.SelectedRack.String()),
	}
	for i, d := range st.Drones {
		session.Drones[i] = toDrone(d)
	}
	if st.Selected != nil {
		selected := toDrone(*st.Selected)
		session.SelectedDrone = &selected
	}
	if st.Prompt != nil {
		session.Prompt = &servers.CoordinatePrompt{
			Action:     servers.CoordinatePromptAction(st.Prompt.Action.String()),
			DroneId:    st.Prompt.DroneID,
			PrefillLat: optional(st.Prompt.PrefillLat),
			PrefillLng: optional(st.Prompt.PrefillLng),
		}
	}
	for i, f := range st.Facilities {
		session.Facilities[i] = toFacility(f)
	}
	return session, nil
}

func toDrone(d missioncontrol.DroneState) servers.Drone {
	packages := d.Packages
	if packages == nil {
		packages = []string{}
	}
	return servers.Drone{
		Id:       d.ID,
		Name:     d.Name,
		Model:    optional(d.Model),
		Type:     optional(d.Type),
		Battery:  optional(d.Battery),
		Source:   toLocation(d.Source),
		Grippers: d.Grippers[:],
		Packages: packages,
	}
}

func toFacility(f missioncontrol.FacilityState) servers.Facility {
	available := make([]string, len(f.AvailableRacks))
	for i, k := range f.AvailableRacks {
		available[i] = k.String()
	}
	occupied := make([]servers.RackSlot, len(f.Occupied))
	for i, slot := range f.Occupied {
		occupied[i] = servers.RackSlot{
			RackColumn: slot.Key.String(),
			RackLabel:  slot.Key.Label(),
			PackageId:  slot.PackageID,
		}
	}
	return servers.Facility{
		Id:             optional(f.ID),
		Name:           f.Name,
		Status:         servers.FacilityStatus(f.Status.String()),
		TotalRacks:     f.TotalRacks,
		AvailableCount: f.AvailableCount,
		AvailableRacks: available,
		Occupied:       occupied,
	}
}

func toMission(m missioncontrol.MissionState) servers.Mission {
	mission := servers.Mission{
		Epoch:      int64(m.Epoch), //nolint:gosec // epochs stay far below MaxInt64
		Status:     servers.MissionStatus(m.Status.String()),
		Dispatch:   servers.MissionDispatch(m.Dispatch.String()),
		PackageId:  optional(m.PackageID),
		ControlKey: optional(string(m.ControlKey)),
		Facility:   optional(m.Facility),
		RackColumn: optional(m.Rack.String()),
		OtpError:   optional(m.OtpError),
	}
	if m.Rack != "" {
		mission.RackLabel = optional(m.Rack.Label())
	}
	if m.Otp != nil {
		mission.Otp = &servers.Otp{
			Code:       m.Otp.Code,
			Recipient:  m.Otp.Recipient,
			RackColumn: optional(m.Otp.Rack.String()),
			RackLabel:  m.Otp.RackLabel(),
		}
	}
	return mission
}

func toView(st monitoring.State) (servers.View, error) {
	id, err := uuid.Parse(st.ID)
	if err != nil {
		return servers.View{}, fmt.Errorf("view id %q: %w", st.ID, err)
	}
	params, err := toParameters(st.Snapshot)
	if err != nil {
		return servers.View{}, err
	}

	view := servers.View{
		Id:              id,
		DroneId:         st.DroneID,
		Generation:      int64(st.Generation), //nolint:gosec // generations stay far below MaxInt64
		Parameters:      params,
		ParametersError: optional(st.ParametersError),
		GeometryError:   optional(st.GeometryError),
	}
	if !st.UpdatedAt.IsZero() {
		updated := st.UpdatedAt
		view.UpdatedAt = &updated
	}
	if st.Geometry != nil {
		view.Geometry = toGeometry(*st.Geometry)
	}
	if st.Viewport != nil {
		view.Viewport = &servers.Viewport{
			Center: *toLocation(&st.Viewport.Center),
			Zoom:   st.Viewport.Zoom,
		}
	}
	return view, nil
}

// toParameters flattens the snapshot through its JSON form so unknown
// readings come out as "N/A".
func toParameters(s telemetry.Snapshot) (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	params := map[string]interface{}{}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	delete(params, "drone_id")
	if s.ReceivedAt.IsZero() {
		delete(params, "received_at")
	}
	return params, nil
}

func toGeometry(g telemetry.Geometry) *servers.Geometry {
	return &servers.Geometry{
		DroneId:     g.DroneID,
		DroneName:   optional(g.DroneName),
		LastKnown:   toLocation(g.LastKnown),
		Source:      toLocation(g.Source),
		Destination: toLocation(g.Destination),
		Warehouse:   toLocation(g.Warehouse),
	}
}

func toLocation(l *kernel.Location) *servers.Location {
	if l == nil {
		return nil
	}
	return &servers.Location{Latitude: l.Lat(), Longitude: l.Lng()}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
