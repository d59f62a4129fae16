package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSubmitCoordinatesCommandIsNotConstructed = errors.New(
	"SubmitCoordinatesCommand must be created via NewSubmitCoordinatesCommand constructor",
)

// SubmitCoordinatesCommand answers the open coordinate prompt.
// The values are kept as the operator typed them: parsing happens in the
// session so that a malformed entry keeps the prompt open for correction.
//
// Example:
//
//	cmd, _ := NewSubmitCoordinatesCommand(sessionID, "12.34", "56.78")
//	err := NewSubmitCoordinatesCommandHandler(sessions).Handle(ctx, cmd)
//	if errs.IsValidation(err) {
//	    // show the error next to the prompt fields
//	}
type SubmitCoordinatesCommand struct {
	sessionTarget
	latitude  string
	longitude string

	guard guard.ConstructorGuard
}

func NewSubmitCoordinatesCommand(sessionID kernel.UUID, latitude string, longitude string) (SubmitCoordinatesCommand, error) {
	cmd := SubmitCoordinatesCommand{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}
	if err := cmd.setSessionID(sessionID); err != nil {
		return SubmitCoordinatesCommand{}, err
	}
	return cmd, nil
}

func (c SubmitCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCoordinatesCommandIsNotConstructed)
}

func (c SubmitCoordinatesCommand) Latitude() string {
	return c.latitude
}

func (c SubmitCoordinatesCommand) Longitude() string {
	return c.longitude
}
