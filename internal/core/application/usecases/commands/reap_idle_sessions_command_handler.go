package commands

import "context"

// ReapIdleSessionsCommandHandler closes sessions idle past the command's timeout.
type ReapIdleSessionsCommandHandler struct {
	sessions SessionRegistry
}

// NewReapIdleSessionsCommandHandler creates the handler used by the idle session job.
func NewReapIdleSessionsCommandHandler(sessions SessionRegistry) ReapIdleSessionsCommandHandler {
	return ReapIdleSessionsCommandHandler{sessions: sessions}
}

// Handle returns how many sessions were closed.
func (h ReapIdleSessionsCommandHandler) Handle(_ context.Context, command ReapIdleSessionsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}
	return h.sessions.ReapIdle(command.Now(), command.IdleTimeout()), nil
}
