package commands_test

import (
	"testing"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("without hand-off", func(t *testing.T) {
		cmd, err := commands.NewCreateSessionCommand(id, "", "")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.SessionID())
		assert.Empty(t, cmd.HandOff().DroneID)
		assert.Empty(t, cmd.HandOff().Rack)
	})

	t.Run("with hand-off", func(t *testing.T) {
		cmd, err := commands.NewCreateSessionCommand(id, "D2", "rack_02")
		require.NoError(t, err)
		assert.Equal(t, "D2", cmd.HandOff().DroneID)
		assert.Equal(t, facility.RackKey("rack_02"), cmd.HandOff().Rack)
	})

	t.Run("malformed rack and zero id are both reported", func(t *testing.T) {
		_, err := commands.NewCreateSessionCommand(kernel.UUID{}, "D2", "second rack")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
