package commands

import "context"

// SelectPackageCommandHandler chooses the package to fly.
type SelectPackageCommandHandler struct {
	sessions SessionRegistry
}

func NewSelectPackageCommandHandler(sessions SessionRegistry) SelectPackageCommandHandler {
	return SelectPackageCommandHandler{sessions: sessions}
}

func (h SelectPackageCommandHandler) Handle(_ context.Context, command SelectPackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.SelectPackage(command.PackageID())
}
