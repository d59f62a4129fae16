package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrResetMissionCommandIsNotConstructed = errors.New(
	"ResetMissionCommand must be created via NewResetMissionCommand constructor",
)

// ResetMissionCommand abandons the current mission attempt. The local
// mission always returns to Ready, whatever the backend answers.
type ResetMissionCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewResetMissionCommand(sessionID kernel.UUID) (ResetMissionCommand, error) {
	cmd := ResetMissionCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return ResetMissionCommand{}, err
	}
	return cmd, nil
}

func (c ResetMissionCommand) Validate() error {
	return c.guard.Validate(ErrResetMissionCommandIsNotConstructed)
}
