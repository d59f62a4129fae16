package commands

import "context"

// OpenViewCommandHandler registers a telemetry view and starts its polling.
type OpenViewCommandHandler struct {
	views ViewRegistry
}

// NewOpenViewCommandHandler creates the handler.
func NewOpenViewCommandHandler(views ViewRegistry) OpenViewCommandHandler {
	return OpenViewCommandHandler{views: views}
}

func (h OpenViewCommandHandler) Handle(_ context.Context, command OpenViewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := h.views.Open(command.ViewID(), command.DroneID())
	return err
}
