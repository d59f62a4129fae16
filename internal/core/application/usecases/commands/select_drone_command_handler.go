package commands

import "context"

// SelectDroneCommandHandler runs the selection flow on the session.
type SelectDroneCommandHandler struct {
	sessions SessionRegistry
}

func NewSelectDroneCommandHandler(sessions SessionRegistry) SelectDroneCommandHandler {
	return SelectDroneCommandHandler{sessions: sessions}
}

// Handle may leave the session waiting on the coordinate prompt.
func (h SelectDroneCommandHandler) Handle(ctx context.Context, command SelectDroneCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.RequestSelect(ctx, command.DroneID())
}
