package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrOpenViewCommandIsNotConstructed = errors.New(
	"OpenViewCommand must be created via NewOpenViewCommand constructor",
)

// OpenViewCommand starts a live telemetry view of a drone. The first fetch
// happens immediately and polling continues until the view is closed.
//
// Example:
//
//	viewID := kernel.NewUUID()
//	cmd, err := NewOpenViewCommand(viewID, "D1")
//	if err != nil {
//	    return err
//	}
//	if err := NewOpenViewCommandHandler(views).Handle(ctx, cmd); err != nil {
//	    return err
//	}
type OpenViewCommand struct { //nolint:recvcheck //using for validation
	viewTarget
	droneID string

	guard guard.ConstructorGuard
}

func NewOpenViewCommand(viewID kernel.UUID, droneID string) (OpenViewCommand, error) {
	cmd := OpenViewCommand{guard: guard.NewConstructorGuard()}

	id, idErr := requiredText("drone_id", droneID)
	if err := errors.Join(cmd.setViewID(viewID), idErr); err != nil {
		return OpenViewCommand{}, err
	}
	cmd.droneID = id
	return cmd, nil
}

func (c OpenViewCommand) Validate() error {
	return c.guard.Validate(ErrOpenViewCommandIsNotConstructed)
}

func (c OpenViewCommand) DroneID() string {
	return c.droneID
}
