package commands

import "context"

// ResetMissionCommandHandler resets the mission on the backend and locally.
type ResetMissionCommandHandler struct {
	sessions SessionRegistry
}

func NewResetMissionCommandHandler(sessions SessionRegistry) ResetMissionCommandHandler {
	return ResetMissionCommandHandler{sessions: sessions}
}

// Handle always clears local state, even when the backend reset fails.
func (h ResetMissionCommandHandler) Handle(ctx context.Context, command ResetMissionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.Reset(ctx)
}
