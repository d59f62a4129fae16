package commands

import "context"

// RequestCoordinateUpdateCommandHandler opens the coordinate prompt for the selected drone.
type RequestCoordinateUpdateCommandHandler struct {
	sessions SessionRegistry
}

func NewRequestCoordinateUpdateCommandHandler(sessions SessionRegistry) RequestCoordinateUpdateCommandHandler {
	return RequestCoordinateUpdateCommandHandler{sessions: sessions}
}

func (h RequestCoordinateUpdateCommandHandler) Handle(_ context.Context, command RequestCoordinateUpdateCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.RequestCoordinateUpdate(command.DroneID())
}
