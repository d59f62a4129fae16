package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation constructors")

// Location is a WGS84 point. It is an immutable value object; the zero value
// is invalid and fails Validate.
//
// Example:
//
//	loc, err := kernel.NewLocation(12.34, 56.78)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Location(12.340000,56.780000)
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location. Both values must be finite and within the
// latitude/longitude bounds.
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation builds a Location from operator text input. Each field must
// parse as a finite number; the returned error is a validation error naming
// the offending field.
//
// Example:
//
//	loc, err := kernel.ParseLocation("12.34", "56.78")
func ParseLocation(latText string, lngText string) (Location, error) {
	lat, latErr := parseCoordinate("source_lat", latText)
	lng, lngErr := parseCoordinate("source_lng", lngText)
	if err := errors.Join(latErr, lngErr); err != nil {
		return Location{}, err
	}
	return NewLocation(lat, lng)
}

// MeanLocation returns the arithmetic mean of the given locations. It fails
// when the slice is empty or contains an unconstructed Location.
func MeanLocation(locations ...Location) (Location, error) {
	if len(locations) == 0 {
		return Location{}, errs.NewValueIsRequiredError("locations")
	}

	var sumLat, sumLng float64
	for _, l := range locations {
		if err := l.Validate(); err != nil {
			return Location{}, err
		}
		sumLat += l.lat
		sumLng += l.lng
	}

	n := float64(len(locations))
	return NewLocation(sumLat/n, sumLng/n)
}

// Validate reports whether the Location was built by a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.lat, l.lng)
}

// IsEqual compares two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", errors.New("latitude must be a finite number"))
	}
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", errors.New("longitude must be a finite number"))
	}
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}

func parseCoordinate(field string, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errs.NewValueIsRequiredError(field)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not a number", text))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not a finite number", text))
	}
	return v, nil
}
