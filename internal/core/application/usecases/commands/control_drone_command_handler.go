package commands

import "context"

// ControlDroneCommandHandler sends a flight command for the drone a view
// follows.
//
// Example:
//
//	cmd, err := NewControlDroneCommand(viewID, "hover")
//	if err != nil {
//	    return err
//	}
//	msg, err := NewControlDroneCommandHandler(views).Handle(ctx, cmd)
type ControlDroneCommandHandler struct {
	views ViewRegistry
}

// NewControlDroneCommandHandler creates a handler resolving views in views.
func NewControlDroneCommandHandler(views ViewRegistry) ControlDroneCommandHandler {
	return ControlDroneCommandHandler{views: views}
}

// Handle returns the backend's confirmation message.
func (h ControlDroneCommandHandler) Handle(ctx context.Context, command ControlDroneCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	view, err := h.views.Get(command.ViewID())
	if err != nil {
		return "", err
	}
	return view.SendCommand(ctx, command.Command().String())
}
