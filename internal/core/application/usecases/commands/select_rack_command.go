package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSelectRackCommandIsNotConstructed = errors.New(
	"SelectRackCommand must be created via NewSelectRackCommand constructor",
)

// SelectRackCommand picks a rack in the selected facility. Racks the cache
// knows to be occupied are refused; the backend has the final word at launch.
//
// Example:
//
//	cmd, err := NewSelectRackCommand(sessionID, "rack_02")
//	if err != nil {
//	    return err // not of the form rack_NN
//	}
//	err = NewSelectRackCommandHandler(sessions).Handle(ctx, cmd)
type SelectRackCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	rack facility.RackKey

	guard guard.ConstructorGuard
}

func NewSelectRackCommand(sessionID kernel.UUID, rackColumn string) (SelectRackCommand, error) {
	cmd := SelectRackCommand{guard: guard.NewConstructorGuard()}

	rack, rackErr := facility.ParseRackKey(rackColumn)
	if err := errors.Join(cmd.setSessionID(sessionID), rackErr); err != nil {
		return SelectRackCommand{}, err
	}
	cmd.rack = rack
	return cmd, nil
}

func (c SelectRackCommand) Validate() error {
	return c.guard.Validate(ErrSelectRackCommandIsNotConstructed)
}

func (c SelectRackCommand) Rack() facility.RackKey {
	return c.rack
}
