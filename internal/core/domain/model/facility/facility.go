package facility

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

var (
	// ErrFacilityIsNotConstructed is returned when a Facility was not created via NewFacility.
	ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

	// ErrRackOccupied is returned when a rack holds a package according to the cached view.
	ErrRackOccupied = errors.New("rack is occupied")

	// ErrRackNotFound is returned for a rack key outside the facility's racks.
	ErrRackNotFound = errors.New("rack does not exist at this facility")
)

// Status is the operational state of a facility.
type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
)

// ParseStatus maps the backend's text ("Active", "Inactive") to a Status.
// Unrecognised text maps to StatusUnknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Facility is a DDT with a fixed number of rack slots. Each slot is either
// empty or assigned to one package.
type Facility struct {
	id         string
	name       string
	totalRacks int
	status     Status

	// occupied maps rack keys to the package they hold. Absent keys are empty.
	occupied map[RackKey]string

	guard guard.ConstructorGuard
}

// NewFacility builds a facility from the backend's view. occupied lists only
// the racks that hold a package; every key must fall within 1..totalRacks.
//
// Example:
//
//	f, err := facility.NewFacility("7", "SFDDT", 4, facility.StatusActive,
//	    map[facility.RackKey]string{"rack_01": "PKG-1"})
func NewFacility(id string, name string, totalRacks int, status Status, occupied map[RackKey]string) (*Facility, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("ddt_name")
	}
	if totalRacks < 0 || totalRacks > MaxRacks {
		return nil, errs.NewValueIsOutOfRangeError("total_racks", totalRacks, 0, MaxRacks)
	}

	f := &Facility{
		id:         id,
		name:       name,
		totalRacks: totalRacks,
		status:     status,
		occupied:   make(map[RackKey]string, len(occupied)),
		guard:      guard.NewConstructorGuard(),
	}

	for key, pkg := range occupied {
		n, err := key.Number()
		if err != nil {
			return nil, err
		}
		if n > totalRacks {
			return nil, errs.NewValueIsOutOfRangeErrorWithCause("rack_column", n, 1, totalRacks, ErrRackNotFound)
		}
		if strings.TrimSpace(pkg) == "" {
			continue
		}
		f.occupied[key] = pkg
	}

	return f, nil
}

// Validate reports whether the facility was built by NewFacility.
func (f *Facility) Validate() error {
	if f == nil {
		return ErrFacilityIsNotConstructed
	}
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

func (f *Facility) ID() string {
	return f.id
}

func (f *Facility) Name() string {
	return f.name
}

func (f *Facility) TotalRacks() int {
	return f.totalRacks
}

func (f *Facility) Status() Status {
	return f.status
}

// AvailableCount is total racks minus occupied racks. It is always derived
// from the slot table, never taken from a backend counter.
func (f *Facility) AvailableCount() int {
	return f.totalRacks - len(f.occupied)
}

// RackKeys returns every rack key of the facility in numeric order.
func (f *Facility) RackKeys() []RackKey {
	keys := make([]RackKey, 0, f.totalRacks)
	for i := 1; i <= f.totalRacks; i++ {
		k, _ := RackKeyFromNumber(i)
		keys = append(keys, k)
	}
	return keys
}

// AvailableRacks returns the empty rack keys in numeric order.
func (f *Facility) AvailableRacks() []RackKey {
	keys := make([]RackKey, 0, f.AvailableCount())
	for _, k := range f.RackKeys() {
		if _, taken := f.occupied[k]; !taken {
			keys = append(keys, k)
		}
	}
	return keys
}

// Occupant returns the package held in the rack, or "" when it is empty.
func (f *Facility) Occupant(key RackKey) (string, error) {
	if err := f.checkKey(key); err != nil {
		return "", err
	}
	return f.occupied[key], nil
}

// IsAvailable reports whether the rack is empty in this view.
func (f *Facility) IsAvailable(key RackKey) (bool, error) {
	pkg, err := f.Occupant(key)
	if err != nil {
		return false, err
	}
	return pkg == "", nil
}

// Occupy records a package in the rack after the backend accepted it.
func (f *Facility) Occupy(key RackKey, packageID string) error {
	if err := f.checkKey(key); err != nil {
		return err
	}
	if packageID == "" {
		return errs.NewValueIsRequiredError("package_id")
	}
	if current, taken := f.occupied[key]; taken && current != packageID {
		return fmt.Errorf("%w: %s holds %s", ErrRackOccupied, key, current)
	}
	f.occupied[key] = packageID
	return nil
}

// Release empties the rack after the backend confirmed the pickup.
func (f *Facility) Release(key RackKey) error {
	if err := f.checkKey(key); err != nil {
		return err
	}
	delete(f.occupied, key)
	return nil
}

// Occupancy returns a copy of the occupied slots, sorted by rack key.
func (f *Facility) Occupancy() []RackSlot {
	slots := make([]RackSlot, 0, len(f.occupied))
	for k, pkg := range f.occupied {
		slots = append(slots, RackSlot{Key: k, PackageID: pkg})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Key < slots[j].Key })
	return slots
}

func (f *Facility) checkKey(key RackKey) error {
	n, err := key.Number()
	if err != nil {
		return err
	}
	if n > f.totalRacks {
		return fmt.Errorf("%w: %s at %s", ErrRackNotFound, key, f.name)
	}
	return nil
}

// RackSlot is one occupied rack.
type RackSlot struct {
	Key       RackKey
	PackageID string
}
