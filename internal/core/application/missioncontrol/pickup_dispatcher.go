package missioncontrol

import (
	"context"
	"fmt"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
)

// dispatchOtp fetches the OTP record (unless one is cached for this mission)
// and emails it to the customer. Retrieval and email outcomes are recorded
// separately, and neither changes the delivery status. Callers hold opMu.
func (s *Session) dispatchOtp(ctx context.Context, epoch uint64, pkg string, manual bool) error {
	s.mu.Lock()
	if !s.isCurrentLocked(epoch, pkg) {
		s.mu.Unlock()
		return nil
	}
	rec, cached := s.mission.Otp()
	s.mu.Unlock()

	if !cached {
		fetched, err := s.deps.Missions.OtpRecord(ctx, pkg)
		if err != nil {
			s.mu.Lock()
			if s.isCurrentLocked(epoch, pkg) {
				s.otpError = errs.Message(err)
				s.notice = fmt.Sprintf("Package %s delivered but OTP data error: %s", pkg, errs.Message(err))
				if manual {
					s.mission.MarkDispatchFailed()
				}
			}
			s.mu.Unlock()
			return fmt.Errorf("fetch otp for %s: %w", pkg, err)
		}

		s.mu.Lock()
		if !s.isCurrentLocked(epoch, pkg) {
			s.mu.Unlock()
			return nil
		}
		if err := s.mission.AttachOtp(fetched); err != nil {
			s.mu.Unlock()
			return err
		}
		s.otpError = ""
		s.mu.Unlock()
		rec = fetched
	}

	email := ports.OtpEmail{
		Recipient: rec.Recipient,
		Code:      rec.Code,
		PackageID: rec.PackageID,
		RackLabel: rec.RackLabel(),
	}
	sendErr := s.deps.Mailer.SendOtp(ctx, email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(epoch, pkg) {
		return nil
	}
	if sendErr != nil {
		s.mission.MarkDispatchFailed()
		s.notice = fmt.Sprintf("Package %s delivered but email failed: %s", pkg, errs.Message(sendErr))
		return fmt.Errorf("send otp email for %s: %w", pkg, sendErr)
	}

	s.mission.MarkDispatched()
	if manual {
		s.notice = fmt.Sprintf("OTP email resent to %s with rack location: %s", email.Recipient, email.RackLabel)
	} else {
		s.notice = fmt.Sprintf("Package %s delivered to %s! OTP sent to %s. Package is now in the DDT rack waiting for customer pickup.",
			pkg, email.RackLabel, email.Recipient)
	}
	s.logger.InfoContext(ctx, "OTP email sent",
		"package_id", pkg, "rack_location", email.RackLabel, "manual", manual)
	return nil
}

// ResendOtp emails the pickup code again. It is always permitted, whatever
// the automatic dispatch did; the record is fetched first when none is cached.
func (s *Session) ResendOtp(ctx context.Context) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	pkg := s.mission.PackageID()
	epoch := s.mission.Epoch()
	if pkg == "" {
		s.mu.Unlock()
		return errs.NewValueIsRequiredError("package")
	}
	s.mission.RequestResend()
	s.mu.Unlock()

	return s.dispatchOtp(ctx, epoch, pkg, true)
}

// ConfirmPickup tells the backend the customer collected the package. On
// success the rack is released in the cache and the mission returns to Ready.
// On failure nothing local changes so the operator can retry.
func (s *Session) ConfirmPickup(ctx context.Context) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	pkg := s.mission.PackageID()
	epoch := s.mission.Epoch()
	sel, selErr := s.pickupSelectionLocked()
	s.mu.Unlock()

	if pkg == "" {
		return errs.NewValueIsRequiredError("package")
	}
	if selErr != nil {
		return selErr
	}

	if err := s.deps.Missions.Pickup(ctx, pkg, sel); err != nil {
		s.mu.Lock()
		s.notice = fmt.Sprintf("Pickup failed: %s", errs.Message(err))
		s.mu.Unlock()
		return fmt.Errorf("pickup package %s: %w", pkg, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(epoch, pkg) {
		return nil
	}
	if err := s.racks.Release(sel); err != nil {
		s.logger.WarnContext(ctx, "Rack cache could not release slot", "error", err)
	}
	s.resetMissionLocked()
	s.notice = fmt.Sprintf("Package %s picked up successfully! %s is now available.", pkg, sel.Rack().Label())
	s.logger.InfoContext(ctx, "Package picked up", "package_id", pkg, "rack", sel.Rack().String())
	return nil
}

// pickupSelectionLocked prefers the rack committed at launch over the
// operator's current choice.
func (s *Session) pickupSelectionLocked() (facility.RackSelection, error) {
	if sel, ok := s.mission.Selection(); ok {
		return sel, nil
	}
	return s.racks.Selection()
}
