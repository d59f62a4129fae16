package mission

import (
	"errors"
	"fmt"
	"strings"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

var (
	// ErrMissionIsNotConstructed is returned when a Mission was not created via NewMission.
	ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission constructor")

	// ErrMissionNotReady is returned when the package is changed while a mission is not Ready.
	ErrMissionNotReady = errors.New("mission is not ready, reset it first")

	// ErrOtpPackageMismatch is returned when an OTP record belongs to another package.
	ErrOtpPackageMismatch = errors.New("otp record belongs to another package")
)

// ControlKey is the opaque token issued by the backend at launch. It is
// required to reset the same mission.
type ControlKey string

// Mission is the aggregate for one delivery attempt.
//
// Invariants:
//   - the control key is set only while a launch has been accepted
//   - the automatic OTP dispatch is triggered at most once per epoch
//   - the OTP record always belongs to the mission's package
type Mission struct {
	// epoch increases on every reset; results tagged with an older epoch are stale.
	epoch uint64

	packageID  string
	controlKey ControlKey
	status     Status

	// selection is the rack committed by the launch call.
	selection *facility.RackSelection

	otp            *OtpRecord
	dispatch       DispatchState
	autoDispatched bool

	guard guard.ConstructorGuard
}

// NewMission creates a Ready mission with no package for the given epoch.
func NewMission(epoch uint64) *Mission {
	return &Mission{
		epoch:  epoch,
		status: Ready,
		guard:  guard.NewConstructorGuard(),
	}
}

func (m *Mission) Validate() error {
	if m == nil {
		return ErrMissionIsNotConstructed
	}
	return m.guard.Validate(ErrMissionIsNotConstructed)
}

func (m *Mission) Epoch() uint64 {
	return m.epoch
}

func (m *Mission) PackageID() string {
	return m.packageID
}

func (m *Mission) ControlKey() ControlKey {
	return m.controlKey
}

func (m *Mission) Status() Status {
	return m.status
}

// Selection returns the rack committed at launch, if any.
func (m *Mission) Selection() (facility.RackSelection, bool) {
	if m.selection == nil {
		return facility.RackSelection{}, false
	}
	return *m.selection, true
}

// Otp returns the fetched OTP record, if any.
func (m *Mission) Otp() (OtpRecord, bool) {
	if m.otp == nil {
		return OtpRecord{}, false
	}
	return *m.otp, true
}

func (m *Mission) Dispatch() DispatchState {
	return m.dispatch
}

// AutoDispatched reports whether the automatic OTP dispatch already ran.
func (m *Mission) AutoDispatched() bool {
	return m.autoDispatched
}

// SelectPackage sets the package to fly. Only a Ready mission can change
// package; an empty id clears the choice.
func (m *Mission) SelectPackage(packageID string) error {
	if m.status != Ready {
		return fmt.Errorf("%w: status is %s", ErrMissionNotReady, m.status)
	}
	m.packageID = strings.TrimSpace(packageID)
	return nil
}

// Launch records an accepted launch: stores the control key and the committed
// rack, clears any OTP state and moves Ready -> Processing.
func (m *Mission) Launch(key ControlKey, selection facility.RackSelection) error {
	if m.packageID == "" {
		return errs.NewValueIsRequiredError("package")
	}
	if err := selection.Validate(); err != nil {
		return err
	}
	next, err := m.status.Launch()
	if err != nil {
		return err
	}

	m.status = next
	m.controlKey = key
	m.selection = &selection
	m.otp = nil
	m.dispatch = NotDispatched
	m.autoDispatched = false
	return nil
}

// FailLaunch records a rejected launch. The control key stays unset.
func (m *Mission) FailLaunch() error {
	next, err := m.status.Fail()
	if err != nil {
		return err
	}
	m.status = next
	m.controlKey = ""
	return nil
}

// Observe applies a backend status. changed is false when the status equals
// the last observed one. dispatch is true exactly once per epoch, the first
// time Delivered is observed.
func (m *Mission) Observe(reported Status) (changed bool, dispatch bool, err error) {
	if reported == m.status {
		return false, false, nil
	}
	next, err := m.status.Observe(reported)
	if err != nil {
		return false, false, err
	}

	m.status = next
	if next == Delivered && !m.autoDispatched {
		m.autoDispatched = true
		dispatch = true
	}
	return true, dispatch, nil
}

// AttachOtp stores the authoritative OTP record for the mission's package.
func (m *Mission) AttachOtp(rec OtpRecord) error {
	if rec.PackageID != m.packageID {
		return fmt.Errorf("%w: %s != %s", ErrOtpPackageMismatch, rec.PackageID, m.packageID)
	}
	m.otp = &rec
	return nil
}

// RequestResend marks a manual resend as in progress. It is always allowed.
func (m *Mission) RequestResend() {
	m.dispatch = ResendRequested
}

// MarkDispatched records a successful email dispatch.
func (m *Mission) MarkDispatched() {
	m.dispatch = Dispatched
}

// MarkDispatchFailed records a failed email dispatch. Delivery status is untouched.
func (m *Mission) MarkDispatchFailed() {
	m.dispatch = DispatchFailed
}

// Reset abandons the attempt and returns a fresh Ready mission for the next epoch.
func (m *Mission) Reset() *Mission {
	return NewMission(m.epoch + 1)
}
