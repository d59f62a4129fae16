package commands

import "context"

// CreateSessionCommandHandler registers a new session.
type CreateSessionCommandHandler struct {
	sessions SessionRegistry
}

func NewCreateSessionCommandHandler(sessions SessionRegistry) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{sessions: sessions}
}

// Handle creates the session. Duplicate identifiers are rejected by the registry.
func (h CreateSessionCommandHandler) Handle(_ context.Context, command CreateSessionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := h.sessions.Create(command.SessionID(), command.HandOff())
	return err
}
