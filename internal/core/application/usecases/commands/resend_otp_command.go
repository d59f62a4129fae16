package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrResendOtpCommandIsNotConstructed = errors.New(
	"ResendOtpCommand must be created via NewResendOtpCommand constructor",
)

// ResendOtpCommand emails the pickup code again. It is always allowed once a
// package is chosen, whatever happened to the automatic email.
type ResendOtpCommand struct {
	sessionTarget
	guard guard.ConstructorGuard
}

func NewResendOtpCommand(sessionID kernel.UUID) (ResendOtpCommand, error) {
	cmd := ResendOtpCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return ResendOtpCommand{}, err
	}
	return cmd, nil
}

func (c ResendOtpCommand) Validate() error {
	return c.guard.Validate(ErrResendOtpCommandIsNotConstructed)
}
