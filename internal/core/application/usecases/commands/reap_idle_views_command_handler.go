package commands

import "context"

// ReapIdleViewsCommandHandler closes views idle past the command's timeout.
type ReapIdleViewsCommandHandler struct {
	views ViewRegistry
}

// NewReapIdleViewsCommandHandler creates the handler used by the idle view job.
func NewReapIdleViewsCommandHandler(views ViewRegistry) ReapIdleViewsCommandHandler {
	return ReapIdleViewsCommandHandler{views: views}
}

// Handle returns how many views were closed.
func (h ReapIdleViewsCommandHandler) Handle(_ context.Context, command ReapIdleViewsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}
	return h.views.ReapIdle(command.Now(), command.IdleTimeout()), nil
}
