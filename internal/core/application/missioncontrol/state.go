package missioncontrol

import (
	"time"

	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/mission"
)

// State is a point-in-time copy of a session for rendering. It shares no
// memory with the session.
type State struct {
	ID         string
	LastActive time.Time
	Notice     string

	Drones   []DroneState
	Selected *DroneState
	Prompt   *CoordinatePrompt

	Destination      *kernel.Location
	Warehouse        *kernel.Location
	Facilities       []FacilityState
	SelectedFacility string
	SelectedRack     facility.RackKey

	Mission MissionState
}

// DroneState is a drone as listed for the operator. Grippers keeps slot
// order with empty strings for free slots; Packages holds only the loaded ones.
type DroneState struct {
	ID       string
	Name     string
	Model    string
	Type     string
	Battery  string
	Source   *kernel.Location
	Grippers [drone.MaxGrippers]string
	Packages []string
}

// FacilityState is the cached occupancy of one DDT facility.
// AvailableCount is derived from TotalRacks and Occupied, never stored.
type FacilityState struct {
	ID             string
	Name           string
	Status         facility.Status
	TotalRacks     int
	AvailableCount int
	AvailableRacks []facility.RackKey
	Occupied       []facility.RackSlot
}

// MissionState describes the current mission. Facility and Rack are the
// committed launch target and stay empty until a launch is accepted.
type MissionState struct {
	Epoch      uint64
	PackageID  string
	ControlKey mission.ControlKey
	Status     mission.Status
	Facility   string
	Rack       facility.RackKey
	Otp        *mission.OtpRecord
	OtpError   string
	Dispatch   mission.DispatchState
}

// State returns the current read model and counts as operator activity.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.lastActive = s.deps.Clock()
	}

	st := State{
		ID:         s.id.String(),
		LastActive: s.lastActive,
		Notice:     s.notice,
		Drones:     make([]DroneState, 0, len(s.drones)),
		Facilities: make([]FacilityState, 0),
		Mission:    s.missionStateLocked(),
	}
	for _, d := range s.drones {
		st.Drones = append(st.Drones, droneState(d))
	}
	if s.selected != nil {
		sel := droneState(s.selected)
		st.Selected = &sel
	}
	if s.prompt != nil {
		p := *s.prompt
		st.Prompt = &p
	}
	if s.resolution != nil {
		dest := s.resolution.Destination()
		st.Destination = &dest
		if wh, ok := s.resolution.Warehouse(); ok {
			st.Warehouse = &wh
		}
	}
	for _, f := range s.racks.ListFacilities() {
		st.Facilities = append(st.Facilities, facilityState(f))
	}
	if f, ok := s.racks.SelectedFacility(); ok {
		st.SelectedFacility = f.Name()
	}
	st.SelectedRack = s.racks.SelectedRack()
	return st
}

func (s *Session) missionStateLocked() MissionState {
	ms := MissionState{
		Epoch:      s.mission.Epoch(),
		PackageID:  s.mission.PackageID(),
		ControlKey: s.mission.ControlKey(),
		Status:     s.mission.Status(),
		OtpError:   s.otpError,
		Dispatch:   s.mission.Dispatch(),
	}
	if sel, ok := s.mission.Selection(); ok {
		ms.Facility = sel.FacilityName()
		ms.Rack = sel.Rack()
	}
	if rec, ok := s.mission.Otp(); ok {
		ms.Otp = &rec
	}
	return ms
}

func droneState(d *drone.Drone) DroneState {
	attrs := d.Attributes()
	ds := DroneState{
		ID:       d.ID(),
		Name:     attrs.Name,
		Model:    attrs.Model,
		Type:     attrs.Type,
		Battery:  attrs.Battery,
		Grippers: d.Grippers(),
		Packages: d.Packages(),
	}
	if src, ok := d.Source(); ok {
		ds.Source = &src
	}
	return ds
}

func facilityState(f *facility.Facility) FacilityState {
	return FacilityState{
		ID:             f.ID(),
		Name:           f.Name(),
		Status:         f.Status(),
		TotalRacks:     f.TotalRacks(),
		AvailableCount: f.AvailableCount(),
		AvailableRacks: f.AvailableRacks(),
		Occupied:       f.Occupancy(),
	}
}
