package commands_test

import (
	"context"
	"testing"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestCloseSessionCommandHandler_Handle(t *testing.T) {
	id := kernel.NewUUID()
	cmd, _ := commands.NewCloseSessionCommand(id)
	sessions := new(MockSessionRegistry)
	sessions.On("Remove", id).Return(errs.NewObjectNotFoundError("sessionId", id.String())).Once()

	err := commands.NewCloseSessionCommandHandler(sessions).Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
