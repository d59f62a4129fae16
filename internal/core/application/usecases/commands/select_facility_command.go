package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSelectFacilityCommandIsNotConstructed = errors.New(
	"SelectFacilityCommand must be created via NewSelectFacilityCommand constructor",
)

// SelectFacilityCommand picks a DDT facility of the current destination.
// Changing the facility drops the selected rack.
type SelectFacilityCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	name string

	guard guard.ConstructorGuard
}

func NewSelectFacilityCommand(sessionID kernel.UUID, name string) (SelectFacilityCommand, error) {
	cmd := SelectFacilityCommand{guard: guard.NewConstructorGuard()}

	n, nameErr := requiredText("facility", name)
	if err := errors.Join(cmd.setSessionID(sessionID), nameErr); err != nil {
		return SelectFacilityCommand{}, err
	}
	cmd.name = n
	return cmd, nil
}

func (c SelectFacilityCommand) Validate() error {
	return c.guard.Validate(ErrSelectFacilityCommandIsNotConstructed)
}

func (c SelectFacilityCommand) Name() string {
	return c.name
}
