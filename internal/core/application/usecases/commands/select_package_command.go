package commands

import (
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrSelectPackageCommandIsNotConstructed = errors.New(
	"SelectPackageCommand must be created via NewSelectPackageCommand constructor",
)

// SelectPackageCommand chooses which gripper package the next launch delivers.
type SelectPackageCommand struct { //nolint:recvcheck //using for validation
	sessionTarget
	packageID string

	guard guard.ConstructorGuard
}

func NewSelectPackageCommand(sessionID kernel.UUID, packageID string) (SelectPackageCommand, error) {
	cmd := SelectPackageCommand{guard: guard.NewConstructorGuard()}

	pkg, pkgErr := requiredText("package_id", packageID)
	if err := errors.Join(cmd.setSessionID(sessionID), pkgErr); err != nil {
		return SelectPackageCommand{}, err
	}
	cmd.packageID = pkg
	return cmd, nil
}

func (c SelectPackageCommand) Validate() error {
	return c.guard.Validate(ErrSelectPackageCommandIsNotConstructed)
}

func (c SelectPackageCommand) PackageID() string {
	return c.packageID
}
