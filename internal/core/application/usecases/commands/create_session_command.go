package commands

import (
	"errors"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// CreateSessionCommand activates mission control for one operator.
// The optional hand-off carries the drone and rack chosen on the monitoring
// screen; they are applied once the drone list and destination are loaded.
//
// Example:
//
//	id := kernel.NewUUID()
//	cmd, err := NewCreateSessionCommand(id, "D2", "rack_02")
//	if err != nil {
//	    return fmt.Errorf("invalid hand-off: %w", err)
//	}
//
//	handler := NewCreateSessionCommandHandler(sessions)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	handOff missioncontrol.HandOff

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates the command. autoSelectDroneID and
// selectedRack may both be empty.
func NewCreateSessionCommand(sessionID kernel.UUID, autoSelectDroneID string, selectedRack string) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setHandOff(autoSelectDroneID, selectedRack),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// HandOff returns the pre-selection to apply.
func (c CreateSessionCommand) HandOff() missioncontrol.HandOff {
	return c.handOff
}

func (c *CreateSessionCommand) setHandOff(droneID string, rack string) error {
	c.handOff.DroneID = droneID
	if rack == "" {
		return nil
	}
	key, err := facility.ParseRackKey(rack)
	if err != nil {
		return err
	}
	c.handOff.Rack = key
	return nil
}
