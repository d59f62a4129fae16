package mission

// DispatchState tracks the OTP email for one mission lifecycle.
//
//	NotDispatched ──auto──> Dispatched | DispatchFailed
//	any ──resend──> ResendRequested ──> Dispatched | DispatchFailed
//
// The automatic attempt happens at most once per lifecycle; resends are
// always allowed.
type DispatchState int

const (
	NotDispatched DispatchState = iota
	Dispatched
	DispatchFailed
	ResendRequested
)

func (d DispatchState) String() string {
	switch d {
	case NotDispatched:
		return "NotDispatched"
	case Dispatched:
		return "Dispatched"
	case DispatchFailed:
		return "DispatchFailed"
	case ResendRequested:
		return "ResendRequested"
	}
	return "Unknown"
}
