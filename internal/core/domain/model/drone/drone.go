// Package drone models a delivery drone as the mission-control service sees
// it: identity, descriptive attributes, an optional source position and up to
// MaxGrippers package-holding slots.
package drone

import (
	"errors"
	"strings"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

// MaxGrippers is the number of physical gripper slots on a delivery drone.
const MaxGrippers = 3

var (
	// ErrDroneIsNotConstructed is returned when a Drone was not created via NewDrone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")

	// ErrPackageNotInGripper is returned when a package is not held by any gripper.
	ErrPackageNotInGripper = errors.New("package is not held by the drone grippers")
)

// Attributes are the descriptive, read-only fields reported by the backend.
type Attributes struct {
	Name    string
	Model   string
	Type    string
	Battery string
}

// Drone is created from backend data. Only the source position is mutated on
// the client side, by the coordinate resolver.
type Drone struct {
	id         string
	attributes Attributes

	// source is nil until the operator or the backend provides both coordinates.
	source *kernel.Location

	// grippers hold package identifiers; "" is an empty slot.
	grippers [MaxGrippers]string

	guard guard.ConstructorGuard
}

// NewDrone validates and builds a Drone. grippers shorter than MaxGrippers are
// padded with empty slots; longer ones are rejected.
//
// Example:
//
//	src, _ := kernel.NewLocation(12.34, 56.78)
//	d, err := drone.NewDrone("D1", drone.Attributes{Name: "Hawk"}, &src, []string{"PKG-1", "", ""})
func NewDrone(id string, attributes Attributes, source *kernel.Location, grippers []string) (*Drone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("drone_id")
	}
	if len(grippers) > MaxGrippers {
		return nil, errs.NewValueIsOutOfRangeError("grippers", len(grippers), 0, MaxGrippers)
	}
	if source != nil {
		if err := source.Validate(); err != nil {
			return nil, err
		}
	}

	d := &Drone{
		id:         id,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}
	if source != nil {
		loc := *source
		d.source = &loc
	}
	for i, pkg := range grippers {
		d.grippers[i] = strings.TrimSpace(pkg)
	}

	return d, nil
}

// Validate reports whether the drone was built by NewDrone.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// ID returns the backend drone identifier.
func (d *Drone) ID() string {
	return d.id
}

// Attributes returns the descriptive fields.
func (d *Drone) Attributes() Attributes {
	return d.attributes
}

// Source returns the source position and whether both coordinates are known.
func (d *Drone) Source() (kernel.Location, bool) {
	if d.source == nil {
		return kernel.Location{}, false
	}
	return *d.source, true
}

// HasSource reports whether both source coordinates are known.
func (d *Drone) HasSource() bool {
	return d.source != nil
}

// SetSource records a confirmed source position.
func (d *Drone) SetSource(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	d.source = &loc
	return nil
}

// Grippers returns a copy of the gripper slots.
func (d *Drone) Grippers() [MaxGrippers]string {
	return d.grippers
}

// Packages lists the packages currently held, in gripper order.
func (d *Drone) Packages() []string {
	packages := make([]string, 0, MaxGrippers)
	for _, pkg := range d.grippers {
		if pkg != "" {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// Carries reports whether packageID sits in one of the grippers.
func (d *Drone) Carries(packageID string) bool {
	if packageID == "" {
		return false
	}
	for _, pkg := range d.grippers {
		if pkg == packageID {
			return true
		}
	}
	return false
}

// Clone returns an independent copy, used when a fresher backend record has to
// keep a locally confirmed source position.
func (d *Drone) Clone() *Drone {
	c := *d
	if d.source != nil {
		loc := *d.source
		c.source = &loc
	}
	return &c
}
