package telemetry

import (
	"encoding/json"
	"fmt"
)

// NotAvailable is how an Unknown reading is rendered, matching the backend's
// own placeholder.
const NotAvailable = "N/A"

// Reading is a single telemetry value that may be unknown.
type Reading[T any] struct {
	value T
	known bool
}

func Known[T any](v T) Reading[T] {
	return Reading[T]{value: v, known: true}
}

func Unknown[T any]() Reading[T] {
	return Reading[T]{}
}

// Value returns the reading and whether it is known. The zero value of T is
// returned for Unknown readings and must not be displayed.
func (r Reading[T]) Value() (T, bool) {
	return r.value, r.known
}

func (r Reading[T]) IsKnown() bool {
	return r.known
}

func (r Reading[T]) String() string {
	if !r.known {
		return NotAvailable
	}
	return fmt.Sprintf("%v", r.value)
}

// MarshalJSON encodes the value itself, or "N/A" when unknown.
func (r Reading[T]) MarshalJSON() ([]byte, error) {
	if !r.known {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(r.value)
}
