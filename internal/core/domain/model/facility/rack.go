package facility

import (
	"fmt"
	"strconv"
	"strings"

	"missionctl/internal/pkg/errs"
)

// MaxRacks bounds the rack numbering (rack_01 .. rack_99).
const MaxRacks = 99

const rackKeyPrefix = "rack_"

// RackKey addresses a single rack slot, in the backend's column form "rack_02".
type RackKey string

// RackKeyFromNumber builds the key for a 1-based rack number.
func RackKeyFromNumber(n int) (RackKey, error) {
	if n < 1 || n > MaxRacks {
		return "", errs.NewValueIsOutOfRangeError("rack_number", n, 1, MaxRacks)
	}
	return RackKey(fmt.Sprintf("%s%02d", rackKeyPrefix, n)), nil
}

// ParseRackKey validates a key received from the operator or the backend.
func ParseRackKey(s string) (RackKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("rack_column")
	}
	k := RackKey(s)
	if _, err := k.Number(); err != nil {
		return "", err
	}
	return k, nil
}

// Number returns the 1-based rack number.
func (k RackKey) Number() (int, error) {
	digits, ok := strings.CutPrefix(string(k), rackKeyPrefix)
	if !ok || digits == "" {
		return 0, errs.NewValueIsInvalidErrorWithCause("rack_column", fmt.Errorf("%q is not a rack column", string(k)))
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("rack_column", fmt.Errorf("%q is not a rack column", string(k)))
	}
	if n < 1 || n > MaxRacks {
		return 0, errs.NewValueIsOutOfRangeError("rack_column", n, 1, MaxRacks)
	}
	return n, nil
}

// Label is the operator and customer facing form: "rack_02" becomes "Rack 02".
// An empty key yields "Not specified".
func (k RackKey) Label() string {
	if k == "" {
		return "Not specified"
	}
	return "Rack " + strings.TrimPrefix(string(k), rackKeyPrefix)
}

func (k RackKey) String() string {
	return string(k)
}
