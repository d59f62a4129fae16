package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSelectDroneCommandIsNotConstructed = errors.New(
	"SelectDroneCommand must be created via NewSelectDroneCommand constructor",
)

// SelectDroneCommand makes a drone the active one in a session.
// A drone without source coordinates opens the coordinate prompt instead of
// being selected; the selection resumes once the prompt is submitted.
//
// Example:
//
//	cmd, err := NewSelectDroneCommand(sessionID, "D1")
//	if err != nil {
//	    return err
//	}
//	if err := NewSelectDroneCommandHandler(sessions).Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// the session state now shows either the prompt or the selected drone
type SelectDroneCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	droneID string

	guard guard.ConstructorGuard
}

func NewSelectDroneCommand(sessionID kernel.UUID, droneID string) (SelectDroneCommand, error) {
	cmd := SelectDroneCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDroneID(droneID),
	); err != nil {
		return SelectDroneCommand{}, err
	}
	return cmd, nil
}

func (c SelectDroneCommand) Validate() error {
	return c.guard.Validate(ErrSelectDroneCommandIsNotConstructed)
}

func (c SelectDroneCommand) DroneID() string {
	return c.droneID
}

func (c *SelectDroneCommand) setDroneID(droneID string) error {
	id, err := requiredText("drone_id", droneID)
	if err != nil {
		return err
	}
	c.droneID = id
	return nil
}
