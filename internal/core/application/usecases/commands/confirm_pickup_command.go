package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand records that the customer collected the package. The
// rack is released and the mission returns to Ready for the next package.
type ConfirmPickupCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewConfirmPickupCommand(sessionID kernel.UUID) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return ConfirmPickupCommand{}, err
	}
	return cmd, nil
}

func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}
