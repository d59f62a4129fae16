package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrCloseViewCommandIsNotConstructed = errors.New(
	"CloseViewCommand must be created via NewCloseViewCommand constructor",
)

// CloseViewCommand stops a telemetry view and closes its streams.
type CloseViewCommand struct {
	viewTarget
	guard guard.ConstructorGuard
}

func NewCloseViewCommand(viewID kernel.UUID) (CloseViewCommand, error) {
	cmd := CloseViewCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setViewID(viewID); err != nil {
		return CloseViewCommand{}, err
	}
	return cmd, nil
}

func (c CloseViewCommand) Validate() error {
	return c.guard.Validate(ErrCloseViewCommandIsNotConstructed)
}
