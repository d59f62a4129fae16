package missioncontrol

import (
	"fmt"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/pkg/errs"
)

// RackAllocator holds the session's cached view of DDT rack occupancy and the
// operator's (facility, rack) choice. The backend owns the real occupancy
// table; the cache is a hint and may be stale. RackAllocator is not safe for
// concurrent use; the session guards it.
type RackAllocator struct {
	facilities []*facility.Facility
	selected   *facility.Facility
	rack       facility.RackKey
}

// NewRackAllocator creates an empty allocator with no facility selected.
//
// Returns:
//   - *RackAllocator: allocator to be filled by Load once a destination resolves
func NewRackAllocator() *RackAllocator {
	return &RackAllocator{}
}

// Load replaces the cache with the facilities of a resolved destination and
// selects the first one by default.
func (a *RackAllocator) Load(facilities []*facility.Facility) {
	a.facilities = facilities
	a.selected = nil
	a.rack = ""
	if len(facilities) > 0 {
		a.selected = facilities[0]
	}
}

// Clear forgets the cache and the selection.
func (a *RackAllocator) Clear() {
	a.Load(nil)
}

// ListFacilities returns the cached facilities in backend order.
func (a *RackAllocator) ListFacilities() []*facility.Facility {
	return a.facilities
}

// SelectedFacility returns the facility the operator is placing into, if any.
func (a *RackAllocator) SelectedFacility() (*facility.Facility, bool) {
	return a.selected, a.selected != nil
}

// SelectedRack returns the pending rack choice, or an empty key when none is
// made or the last choice was committed by a launch.
func (a *RackAllocator) SelectedRack() facility.RackKey {
	return a.rack
}

// SelectFacility changes the selected facility. The rack choice is dropped
// when the facility changes.
func (a *RackAllocator) SelectFacility(name string) error {
	for _, f := range a.facilities {
		if f.Name() == name {
			if a.selected != f {
				a.rack = ""
			}
			a.selected = f
			return nil
		}
	}
	return errs.NewObjectNotFoundError("facility", name)
}

// SelectRack chooses a rack of the selected facility. A rack that is occupied
// in the cached view is refused.
func (a *RackAllocator) SelectRack(key facility.RackKey) (facility.RackSelection, error) {
	if a.selected == nil {
		return facility.RackSelection{}, errs.NewValueIsRequiredError("facility")
	}
	sel, err := facility.NewRackSelection(a.selected, key)
	if err != nil {
		return facility.RackSelection{}, errs.NewValueIsInvalidErrorWithCause("rack_column", err)
	}
	a.rack = key
	return sel, nil
}

// Selection returns the current (facility, rack) choice.
func (a *RackAllocator) Selection() (facility.RackSelection, error) {
	if a.selected == nil {
		return facility.RackSelection{}, errs.NewValueIsRequiredError("facility")
	}
	if a.rack == "" {
		return facility.RackSelection{}, errs.NewValueIsRequiredError("rack")
	}
	return facility.RestoreRackSelection(a.selected.Name(), a.rack)
}

// LaunchSelection returns the current choice checked again against the cached
// occupancy. A rack that became occupied since it was chosen is refused.
func (a *RackAllocator) LaunchSelection() (facility.RackSelection, error) {
	if a.selected == nil {
		return facility.RackSelection{}, errs.NewValueIsRequiredError("facility")
	}
	if a.rack == "" {
		return facility.RackSelection{}, errs.NewValueIsRequiredError("rack")
	}
	sel, err := facility.NewRackSelection(a.selected, a.rack)
	if err != nil {
		return facility.RackSelection{}, errs.NewValueIsInvalidErrorWithCause("rack_column", err)
	}
	return sel, nil
}

// Reserve mirrors a launch the backend accepted into the cache. The slot now
// belongs to the launched mission, so it stops being the pending choice.
func (a *RackAllocator) Reserve(sel facility.RackSelection, packageID string) error {
	if a.isChosen(sel) {
		a.rack = ""
	}
	f := a.find(sel.FacilityName())
	if f == nil {
		return nil
	}
	if err := f.Occupy(sel.Rack(), packageID); err != nil {
		return fmt.Errorf("reserve %s at %s: %w", sel.Rack(), sel.FacilityName(), err)
	}
	return nil
}

// Release mirrors a confirmed pickup into the cache: the slot becomes free
// and the rack choice is cleared.
func (a *RackAllocator) Release(sel facility.RackSelection) error {
	if a.isChosen(sel) {
		a.rack = ""
	}
	f := a.find(sel.FacilityName())
	if f == nil {
		return nil
	}
	return f.Release(sel.Rack())
}

func (a *RackAllocator) isChosen(sel facility.RackSelection) bool {
	return a.rack == sel.Rack() && a.selected != nil && a.selected.Name() == sel.FacilityName()
}

func (a *RackAllocator) find(name string) *facility.Facility {
	for _, f := range a.facilities {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// SelectFacility changes the selected DDT facility.
func (s *Session) SelectFacility(name string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.racks.SelectFacility(name)
}

// SelectRack chooses a rack at the selected facility. A rack occupied in the
// cached view is refused without any network call; a free-looking rack may
// still be rejected by the backend at launch.
func (s *Session) SelectRack(rackColumn string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	key, err := facility.ParseRackKey(rackColumn)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.racks.SelectRack(key)
	if err != nil {
		return err
	}
	s.notice = fmt.Sprintf("Selected %s at %s", sel.Rack().Label(), sel.FacilityName())
	return nil
}

func (s *Session) applyHandOffRackLocked() {
	rack := s.handOff.Rack
	if rack == "" {
		return
	}
	s.handOff.Rack = ""
	if _, err := s.racks.SelectRack(rack); err != nil {
		s.logger.Warn("Hand-off rack not selectable", "rack", rack.String(), "error", err)
	}
}
