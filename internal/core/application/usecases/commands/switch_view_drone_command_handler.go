package commands

import "context"

// SwitchViewDroneCommandHandler points a view at another drone.
type SwitchViewDroneCommandHandler struct {
	views ViewRegistry
}

func NewSwitchViewDroneCommandHandler(views ViewRegistry) SwitchViewDroneCommandHandler {
	return SwitchViewDroneCommandHandler{views: views}
}

func (h SwitchViewDroneCommandHandler) Handle(_ context.Context, command SwitchViewDroneCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	view, err := h.views.Get(command.ViewID())
	if err != nil {
		return err
	}
	return view.SwitchDrone(command.DroneID())
}
