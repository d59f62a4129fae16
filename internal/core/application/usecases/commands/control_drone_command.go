package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/pkg/guard"
)

var ErrControlDroneCommandIsNotConstructed = errors.New(
	"ControlDroneCommand must be created via NewControlDroneCommand constructor",
)

// ControlDroneCommand forwards an operator instruction (takeoff, hover,
// launch, land, stop, abort, rtl) to the drone a view follows.
//
// Example:
//
//	cmd, err := NewControlDroneCommand(viewID, "rtl")
//	if err != nil {
//	    return err // unknown command, nothing sent
//	}
//	msg, err := NewControlDroneCommandHandler(views).Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(msg) // backend confirmation
type ControlDroneCommand struct { //nolint:recvcheck //using for validation
	viewTarget
	command telemetry.Command

	guard guard.ConstructorGuard
}

func NewControlDroneCommand(viewID kernel.UUID, command string) (ControlDroneCommand, error) {
	cmd := ControlDroneCommand{guard: guard.NewConstructorGuard()}

	parsed, cmdErr := telemetry.ParseCommand(command)
	if err := errors.Join(cmd.setViewID(viewID), cmdErr); err != nil {
		return ControlDroneCommand{}, err
	}
	cmd.command = parsed
	return cmd, nil
}

func (c ControlDroneCommand) Validate() error {
	return c.guard.Validate(ErrControlDroneCommandIsNotConstructed)
}

func (c ControlDroneCommand) Command() telemetry.Command {
	return c.command
}
