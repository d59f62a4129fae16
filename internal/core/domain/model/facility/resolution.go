package facility

import (
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"
)

// Resolution is the destination computed for a drone selection together with
// the candidate facilities at that destination. It is never persisted.
type Resolution struct {
	destination kernel.Location
	facilities  []*Facility

	// warehouse is the origin warehouse position when the backend knows it.
	warehouse *kernel.Location
}

// NewResolution keeps the backend's facility order; the first facility is the
// default selection.
func NewResolution(destination kernel.Location, facilities []*Facility, warehouse *kernel.Location) (Resolution, error) {
	if err := destination.Validate(); err != nil {
		return Resolution{}, errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	for _, f := range facilities {
		if err := f.Validate(); err != nil {
			return Resolution{}, err
		}
	}
	r := Resolution{destination: destination, facilities: append([]*Facility(nil), facilities...)}
	if warehouse != nil {
		w := *warehouse
		r.warehouse = &w
	}
	return r, nil
}

func (r Resolution) Destination() kernel.Location {
	return r.destination
}

// Facilities returns the candidate facilities in backend order.
func (r Resolution) Facilities() []*Facility {
	return append([]*Facility(nil), r.facilities...)
}

// Warehouse returns the origin warehouse position, if known.
func (r Resolution) Warehouse() (kernel.Location, bool) {
	if r.warehouse == nil {
		return kernel.Location{}, false
	}
	return *r.warehouse, true
}
