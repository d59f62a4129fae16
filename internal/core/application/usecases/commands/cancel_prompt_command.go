package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrCancelPromptCommandIsNotConstructed = errors.New(
	"CancelPromptCommand must be created via NewCancelPromptCommand constructor",
)

// CancelPromptCommand dismisses the coordinate prompt without writing anything.
type CancelPromptCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewCancelPromptCommand(sessionID kernel.UUID) (CancelPromptCommand, error) {
	cmd := CancelPromptCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return CancelPromptCommand{}, err
	}
	return cmd, nil
}

func (c CancelPromptCommand) Validate() error {
	return c.guard.Validate(ErrCancelPromptCommandIsNotConstructed)
}
