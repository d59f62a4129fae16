package commands

import "context"

// SelectRackCommandHandler chooses a rack. Racks occupied in the cache are refused locally.
type SelectRackCommandHandler struct {
	sessions SessionRegistry
}

// NewSelectRackCommandHandler creates the handler.
func NewSelectRackCommandHandler(sessions SessionRegistry) SelectRackCommandHandler {
	return SelectRackCommandHandler{sessions: sessions}
}

// Handle records the rack choice. The backend may still refuse it at launch.
func (h SelectRackCommandHandler) Handle(_ context.Context, command SelectRackCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.SelectRack(command.Rack().String())
}
