package commands

import "context"

// CancelPromptCommandHandler dismisses the coordinate prompt of a session.
type CancelPromptCommandHandler struct {
	sessions SessionRegistry
}

func NewCancelPromptCommandHandler(sessions SessionRegistry) CancelPromptCommandHandler {
	return CancelPromptCommandHandler{sessions: sessions}
}

func (h CancelPromptCommandHandler) Handle(_ context.Context, command CancelPromptCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.CancelPrompt()
}
