package commands

import "context"

// SelectFacilityCommandHandler changes the session's DDT facility.
type SelectFacilityCommandHandler struct {
	sessions SessionRegistry
}

func NewSelectFacilityCommandHandler(sessions SessionRegistry) SelectFacilityCommandHandler {
	return SelectFacilityCommandHandler{sessions: sessions}
}

func (h SelectFacilityCommandHandler) Handle(_ context.Context, command SelectFacilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.SelectFacility(command.Name())
}
