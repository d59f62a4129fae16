package commands

import "context"

// LaunchMissionCommandHandler launches the session's mission.
type LaunchMissionCommandHandler struct {
	sessions SessionRegistry
}

// NewLaunchMissionCommandHandler creates the handler.
//
// Parameters:
//   - sessions: registry the session is looked up in
func NewLaunchMissionCommandHandler(sessions SessionRegistry) LaunchMissionCommandHandler {
	return LaunchMissionCommandHandler{sessions: sessions}
}

// Handle launches the mission. A validation error means nothing was sent to
// the backend.
func (h LaunchMissionCommandHandler) Handle(ctx context.Context, command LaunchMissionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.Launch(ctx)
}
