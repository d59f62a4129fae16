package missioncontrol

import (
	"context"
	"fmt"

	"missionctl/internal/core/domain/model/mission"
	"missionctl/internal/pkg/periodic"
)

// startPollerLocked replaces any running poller with one bound to the current
// mission epoch and package.
func (s *Session) startPollerLocked() {
	s.stopPollerLocked()

	epoch, pkg := s.mission.Epoch(), s.mission.PackageID()
	s.poller = periodic.NewTask("status_poller", s.deps.PollInterval, func(ctx context.Context) {
		s.pollStatus(ctx, epoch, pkg)
	}, s.logger)
	s.poller.Start(false)
}

func (s *Session) stopPollerLocked() {
	if s.poller != nil {
		s.poller.Stop()
		s.poller = nil
	}
}

// pollStatus is one poller tick. A transport failure is logged and retried on
// the next tick. The poller stops itself once the mission leaves Processing.
func (s *Session) pollStatus(ctx context.Context, epoch uint64, pkg string) {
	status, err := s.deps.Missions.Status(ctx, pkg)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.WarnContext(ctx, "Status poll failed, retrying on next tick", "package_id", pkg, "error", err)
		}
		return
	}

	s.mu.Lock()
	if ctx.Err() != nil || !s.isCurrentLocked(epoch, pkg) {
		s.mu.Unlock()
		return
	}

	changed, dispatch, err := s.mission.Observe(status)
	if err != nil {
		s.logger.WarnContext(ctx, "Ignoring backend status", "package_id", pkg, "status", status.String(), "error", err)
	}
	if changed {
		s.logger.InfoContext(ctx, "Mission status changed", "package_id", pkg, "status", status.String())
		switch status {
		case mission.Delivered:
			s.notice = fmt.Sprintf("Package %s delivered, fetching OTP", pkg)
		case mission.Failed:
			s.notice = fmt.Sprintf("Package %s delivery failed", pkg)
		}
	}
	if s.mission.Status() != mission.Processing {
		s.stopPollerLocked()
	}
	sessionCtx := s.ctx
	s.mu.Unlock()

	if dispatch {
		s.autoDispatch(sessionCtx, epoch, pkg)
	}
}

// autoDispatch runs the delivery-triggered OTP dispatch under the operation
// lock, so a concurrent ResendOtp waits for it instead of racing it.
func (s *Session) autoDispatch(ctx context.Context, epoch uint64, pkg string) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.dispatchOtp(ctx, epoch, pkg, false); err != nil {
		s.logger.ErrorContext(ctx, "Automatic OTP dispatch failed", "package_id", pkg, "error", err)
	}
}
