package commands

import "context"

// CloseViewCommandHandler stops polling for a view and forgets it.
type CloseViewCommandHandler struct {
	views ViewRegistry
}

func NewCloseViewCommandHandler(views ViewRegistry) CloseViewCommandHandler {
	return CloseViewCommandHandler{views: views}
}

func (h CloseViewCommandHandler) Handle(_ context.Context, command CloseViewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.views.Remove(command.ViewID())
}
