package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrCloseSessionCommandIsNotConstructed = errors.New(
	"CloseSessionCommand must be created via NewCloseSessionCommand constructor",
)

// CloseSessionCommand leaves mission control: the session's poller stops and
// its state is discarded. The backend is not told anything.
type CloseSessionCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewCloseSessionCommand(sessionID kernel.UUID) (CloseSessionCommand, error) {
	cmd := CloseSessionCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return CloseSessionCommand{}, err
	}
	return cmd, nil
}

func (c CloseSessionCommand) Validate() error {
	return c.guard.Validate(ErrCloseSessionCommandIsNotConstructed)
}
