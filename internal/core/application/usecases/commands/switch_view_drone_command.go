package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSwitchViewDroneCommandIsNotConstructed = errors.New(
	"SwitchViewDroneCommand must be created via NewSwitchViewDroneCommand constructor",
)

// SwitchViewDroneCommand points an open view at another drone. Readings
// reset to Unknown until the new drone's first fetch.
type SwitchViewDroneCommand struct { //nolint:recvcheck //using for validation
	viewTarget
	droneID string

	guard guard.ConstructorGuard
}

func NewSwitchViewDroneCommand(viewID kernel.UUID, droneID string) (SwitchViewDroneCommand, error) {
	cmd := SwitchViewDroneCommand{guard: guard.NewConstructorGuard()}

	id, idErr := requiredText("drone_id", droneID)
	if err := errors.Join(cmd.setViewID(viewID), idErr); err != nil {
		return SwitchViewDroneCommand{}, err
	}
	cmd.droneID = id
	return cmd, nil
}

func (c SwitchViewDroneCommand) Validate() error {
	return c.guard.Validate(ErrSwitchViewDroneCommandIsNotConstructed)
}

func (c SwitchViewDroneCommand) DroneID() string {
	return c.droneID
}
