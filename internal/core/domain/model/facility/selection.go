package facility

import (
	"errors"
	"fmt"

	"missionctl/internal/pkg/guard"
)

// ErrRackSelectionIsNotConstructed is returned when a RackSelection was not
// created via NewRackSelection.
var ErrRackSelectionIsNotConstructed = errors.New("RackSelection must be created via NewRackSelection constructor")

// RackSelection is the operator's (facility, rack) choice. It exists only on
// the client until a launch commits it.
type RackSelection struct {
	facilityName string
	rack         RackKey
	guard        guard.ConstructorGuard
}

// NewRackSelection succeeds only when the rack is empty in the given view of
// the facility.
func NewRackSelection(f *Facility, rack RackKey) (RackSelection, error) {
	if err := f.Validate(); err != nil {
		return RackSelection{}, err
	}
	available, err := f.IsAvailable(rack)
	if err != nil {
		return RackSelection{}, err
	}
	if !available {
		return RackSelection{}, fmt.Errorf("%w: %s at %s", ErrRackOccupied, rack.Label(), f.Name())
	}

	return RackSelection{
		facilityName: f.Name(),
		rack:         rack,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRackSelection rebuilds a selection without checking occupancy, for
// racks already committed by a launch.
func RestoreRackSelection(facilityName string, rack RackKey) (RackSelection, error) {
	if _, err := rack.Number(); err != nil {
		return RackSelection{}, err
	}
	return RackSelection{facilityName: facilityName, rack: rack, guard: guard.NewConstructorGuard()}, nil
}

func (s RackSelection) Validate() error {
	return s.guard.Validate(ErrRackSelectionIsNotConstructed)
}

func (s RackSelection) FacilityName() string {
	return s.facilityName
}

func (s RackSelection) Rack() RackKey {
	return s.rack
}
