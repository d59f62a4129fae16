package commands

import "context"

// CloseSessionCommandHandler stops and forgets a session.
type CloseSessionCommandHandler struct {
	sessions SessionRegistry
}

func NewCloseSessionCommandHandler(sessions SessionRegistry) CloseSessionCommandHandler {
	return CloseSessionCommandHandler{sessions: sessions}
}

func (h CloseSessionCommandHandler) Handle(_ context.Context, command CloseSessionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.sessions.Remove(command.SessionID())
}
