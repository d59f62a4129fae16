package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrRequestCoordinateUpdateCommandIsNotConstructed = errors.New(
	"RequestCoordinateUpdateCommand must be created via NewRequestCoordinateUpdateCommand constructor",
)

// RequestCoordinateUpdateCommand opens the coordinate prompt for a drone,
// prefilled with its current source when it has one.
type RequestCoordinateUpdateCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	droneID string

	guard guard.ConstructorGuard
}

func NewRequestCoordinateUpdateCommand(sessionID kernel.UUID, droneID string) (RequestCoordinateUpdateCommand, error) {
	cmd := RequestCoordinateUpdateCommand{guard: guard.NewConstructorGuard()}

	id, idErr := requiredText("drone_id", droneID)
	if err := errors.Join(cmd.setSessionID(sessionID), idErr); err != nil {
		return RequestCoordinateUpdateCommand{}, err
	}
	cmd.droneID = id
	return cmd, nil
}

func (c RequestCoordinateUpdateCommand) Validate() error {
	return c.guard.Validate(ErrRequestCoordinateUpdateCommandIsNotConstructed)
}

func (c RequestCoordinateUpdateCommand) DroneID() string {
	return c.droneID
}
