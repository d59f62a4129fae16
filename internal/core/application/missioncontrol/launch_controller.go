package missioncontrol

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
)

// SelectPackage chooses the package to fly. It must sit in a gripper of the
// selected drone and the mission must be Ready. An empty id clears the choice.
func (s *Session) SelectPackage(packageID string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return errs.NewValueIsRequiredError("drone")
	}
	pkg := strings.TrimSpace(packageID)
	if pkg != "" && !s.selected.Carries(pkg) {
		return errs.NewValueIsInvalidErrorWithCause("package_id",
			fmt.Errorf("%w: %s on drone %s", drone.ErrPackageNotInGripper, pkg, s.selected.ID()))
	}
	if pkg == s.mission.PackageID() {
		return nil
	}
	if err := s.mission.SelectPackage(pkg); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("package_id", err)
	}
	s.stopPollerLocked()
	s.otpError = ""
	return nil
}

// Launch submits the mission. Package, facility, rack and destination must be
// set; a missing one is a validation error and nothing is sent. On success the
// control key is stored, the mission becomes Processing and the status poller
// starts. On failure the mission becomes Failed with the key unset.
func (s *Session) Launch(ctx context.Context) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	req, err := s.launchRequestLocked()
	epoch := s.mission.Epoch()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	key, launchErr := s.deps.Missions.Launch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(epoch, req.PackageID) {
		return nil
	}

	if launchErr != nil {
		_ = s.mission.FailLaunch()
		s.notice = fmt.Sprintf("Launch failed: %s", errs.Message(launchErr))
		s.logger.ErrorContext(ctx, "Launch failed", "package_id", req.PackageID, "error", launchErr)
		return fmt.Errorf("launch package %s: %w", req.PackageID, launchErr)
	}

	if err := s.mission.Launch(key, req.Selection); err != nil {
		return err
	}
	if err := s.racks.Reserve(req.Selection, req.PackageID); err != nil {
		s.logger.WarnContext(ctx, "Rack cache disagrees with accepted launch", "error", err)
	}
	s.notice = fmt.Sprintf("Package %s launched successfully to %s - %s. Package will be placed in the DDT rack upon delivery.",
		req.PackageID, req.Selection.FacilityName(), req.Selection.Rack().Label())
	s.logger.InfoContext(ctx, "Package launched",
		"package_id", req.PackageID, "ddt_name", req.Selection.FacilityName(), "rack", req.Selection.Rack().String())

	s.startPollerLocked()
	return nil
}

func (s *Session) launchRequestLocked() (ports.LaunchRequest, error) {
	var missing []error
	if s.mission.PackageID() == "" {
		missing = append(missing, errs.NewValueIsRequiredError("package"))
	}
	sel, selErr := s.racks.LaunchSelection()
	if selErr != nil {
		missing = append(missing, selErr)
	}
	if s.resolution == nil {
		missing = append(missing, errs.NewValueIsRequiredError("destination"))
	}
	if err := errors.Join(missing...); err != nil {
		return ports.LaunchRequest{}, err
	}
	if s.mission.Status() != mission.Ready {
		return ports.LaunchRequest{}, errs.NewValueIsInvalidErrorWithCause("mission",
			fmt.Errorf("%w: status is %s", mission.ErrMissionNotReady, s.mission.Status()))
	}

	return ports.LaunchRequest{
		PackageID:   s.mission.PackageID(),
		Selection:   sel,
		Destination: s.resolution.Destination(),
	}, nil
}

// Reset abandons the current mission attempt. The backend is asked to reset
// the package with the stored control key, possibly empty, but the local
// mission returns to Ready whatever the backend answers.
func (s *Session) Reset(ctx context.Context) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	pkg := s.mission.PackageID()
	key := s.mission.ControlKey()
	s.mu.Unlock()

	var backendErr error
	if pkg != "" {
		backendErr = s.deps.Missions.Reset(ctx, pkg, key)
		if backendErr != nil {
			s.logger.WarnContext(ctx, "Backend reset failed, clearing local state anyway",
				"package_id", pkg, "error", backendErr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.resetMissionLocked()
	s.notice = "System reset"
	if backendErr != nil {
		s.notice = fmt.Sprintf("System reset (backend reset failed: %s)", errs.Message(backendErr))
	}
	return nil
}
