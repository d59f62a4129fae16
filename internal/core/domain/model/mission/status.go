package mission

import (
	"fmt"
	"strings"

	"missionctl/internal/pkg/errs"
)

// Status is the lifecycle state of a mission.
//
// State transitions:
//
//	Ready ──launch ok──> Processing ──poll──> Delivered
//	  │                      │
//	  └──launch failed──┐    └──poll──> Failed
//	                    v
//	                  Failed
//
//	Delivered, Failed ──reset──> Ready
//
// Ready -> Processing happens only through a successful launch.
type Status int

const (
	// Unknown catches uninitialised values and unrecognised backend text.
	Unknown Status = iota

	// Ready means no mission is in flight.
	Ready

	// Processing means the backend accepted a launch and delivery is pending.
	Processing

	// Delivered means the package sits in its rack waiting for pickup.
	Delivered

	// Failed means the launch or the delivery failed.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Ready:      "Ready",
		Processing: "Processing",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

// ParseStatus maps backend text to a Status, ignoring case and surrounding
// whitespace. The backend's names are treated as an opaque enum: anything
// unrecognised is an error rather than a guess.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.ToLower(name) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a mission status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further backend transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// Launch transitions Ready -> Processing.
func (s Status) Launch() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to launch", s),
		)
	}
	return Processing, nil
}

// Fail transitions Ready (launch rejected) or Processing (delivery failed) to Failed.
func (s Status) Fail() (Status, error) {
	if s != Ready && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s),
		)
	}
	return Failed, nil
}

// Observe applies a status reported by the backend while Processing. Any
// valid reported status is accepted, mirroring the backend; reports received
// outside Processing are rejected so a late poll cannot revive a mission.
func (s Status) Observe(reported Status) (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s does not accept backend status updates", s),
		)
	}
	if err := reported.Validate(); err != nil {
		return 0, err
	}
	return reported, nil
}
