package commands

import "context"

// ConfirmPickupCommandHandler reports a customer pickup to the backend.
// On success the rack is released in the session's cache and the mission
// returns to Ready; a failure changes nothing so the operator can retry.
//
// Example:
//
//	cmd, _ := NewConfirmPickupCommand(sessionID)
//	if err := NewConfirmPickupCommandHandler(sessions).Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("pickup not recorded: %w", err)
//	}
type ConfirmPickupCommandHandler struct {
	sessions SessionRegistry
}

// NewConfirmPickupCommandHandler creates the handler.
//
// Parameters:
//   - sessions: registry the session is looked up in
func NewConfirmPickupCommandHandler(sessions SessionRegistry) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{sessions: sessions}
}

// Handle confirms the pickup of the session's current package.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.ConfirmPickup(ctx)
}
