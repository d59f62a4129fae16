package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrLaunchMissionCommandIsNotConstructed = errors.New(
	"LaunchMissionCommand must be created via NewLaunchMissionCommand constructor",
)

// LaunchMissionCommand sends the selected package to the selected rack.
// On success the mission moves to Processing and status polling starts; a
// backend rejection moves it to Failed with the backend's message as notice.
//
// Example:
//
//	cmd, _ := NewLaunchMissionCommand(sessionID)
//	err := NewLaunchMissionCommandHandler(sessions).Handle(ctx, cmd)
//	switch {
//	case errs.IsValidation(err):
//	    // package, rack or destination missing; nothing was sent
//	case errors.Is(err, errs.ErrBusiness):
//	    // backend refused, e.g. the rack is taken
//	case err != nil:
//	    // backend unreachable
//	}
type LaunchMissionCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewLaunchMissionCommand(sessionID kernel.UUID) (LaunchMissionCommand, error) {
	cmd := LaunchMissionCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return LaunchMissionCommand{}, err
	}
	return cmd, nil
}

func (c LaunchMissionCommand) Validate() error {
	return c.guard.Validate(ErrLaunchMissionCommandIsNotConstructed)
}
