package commands

import "context"

// SubmitCoordinatesCommandHandler answers the coordinate prompt.
type SubmitCoordinatesCommandHandler struct {
	sessions SessionRegistry
}

// NewSubmitCoordinatesCommandHandler creates the handler.
func NewSubmitCoordinatesCommandHandler(sessions SessionRegistry) SubmitCoordinatesCommandHandler {
	return SubmitCoordinatesCommandHandler{sessions: sessions}
}

// Handle writes the coordinates to the backend and resumes a pending selection.
func (h SubmitCoordinatesCommandHandler) Handle(ctx context.Context, command SubmitCoordinatesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.SubmitCoordinates(ctx, command.Latitude(), command.Longitude())
}
