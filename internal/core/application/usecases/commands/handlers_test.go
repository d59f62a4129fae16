package commands_test

import (
	"context"
	"testing"
	"time"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandlers_UnknownSession(t *testing.T) {
	id := kernel.NewUUID()
	sessions := new(MockSessionRegistry)
	sessions.On("Get", id).Return(nil, errs.NewObjectNotFoundError("sessionId", id.String()))
	ctx := context.Background()

	launch, _ := commands.NewLaunchMissionCommand(id)
	require.ErrorIs(t, commands.NewLaunchMissionCommandHandler(sessions).Handle(ctx, launch), errs.ErrObjectNotFound)

	pickup, _ := commands.NewConfirmPickupCommand(id)
	require.ErrorIs(t, commands.NewConfirmPickupCommandHandler(sessions).Handle(ctx, pickup), errs.ErrObjectNotFound)

	rack, _ := commands.NewSelectRackCommand(id, "rack_01")
	require.ErrorIs(t, commands.NewSelectRackCommandHandler(sessions).Handle(ctx, rack), errs.ErrObjectNotFound)
}

func TestSessionHandlers_RouteToSession(t *testing.T) {
	s, drones, missions := newSession(t)
	sessions := new(MockSessionRegistry)
	sessions.On("Get", s.ID()).Return(s, nil)
	ctx := context.Background()

	t.Run("launch without selection is a validation error", func(t *testing.T) {
		cmd, _ := commands.NewLaunchMissionCommand(s.ID())

		err := commands.NewLaunchMissionCommandHandler(sessions).Handle(ctx, cmd)

		assert.True(t, errs.IsValidation(err))
		missions.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything)
	})

	t.Run("reset without package succeeds locally", func(t *testing.T) {
		cmd, _ := commands.NewResetMissionCommand(s.ID())

		require.NoError(t, commands.NewResetMissionCommandHandler(sessions).Handle(ctx, cmd))
		missions.AssertNotCalled(t, "Reset", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("select drone opens the prompt for a drone without source", func(t *testing.T) {
		d, err := drone.NewDrone("D1", drone.Attributes{Name: "Hawk"}, nil, []string{"PKG-1"})
		require.NoError(t, err)
		drones.On("ListDeliveryDrones", mock.Anything).Return([]*drone.Drone{d}, nil).Once()
		require.NoError(t, s.RefreshDrones(ctx))
		cmd, _ := commands.NewSelectDroneCommand(s.ID(), "D1")

		require.NoError(t, commands.NewSelectDroneCommandHandler(sessions).Handle(ctx, cmd))

		st := s.State()
		require.NotNil(t, st.Prompt)
		assert.Equal(t, "D1", st.Prompt.DroneID)
	})

	t.Run("malformed coordinates keep the prompt", func(t *testing.T) {
		cmd, _ := commands.NewSubmitCoordinatesCommand(s.ID(), "abc", "56.78")

		err := commands.NewSubmitCoordinatesCommandHandler(sessions).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotNil(t, s.State().Prompt)
		drones.AssertNotCalled(t, "UpdateSourceCoordinates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancel closes the prompt", func(t *testing.T) {
		cmd, _ := commands.NewCancelPromptCommand(s.ID())

		require.NoError(t, commands.NewCancelPromptCommandHandler(sessions).Handle(ctx, cmd))
		assert.Nil(t, s.State().Prompt)
	})

	t.Run("resend without package is refused", func(t *testing.T) {
		cmd, _ := commands.NewResendOtpCommand(s.ID())

		require.ErrorIs(t, commands.NewResendOtpCommandHandler(sessions).Handle(ctx, cmd), errs.ErrValueIsRequired)
	})
}

func TestViewHandlers(t *testing.T) {
	v, gw := newView(t)
	views := new(MockViewRegistry)
	views.On("Get", v.ID()).Return(v, nil)
	ctx := context.Background()

	t.Run("control drone forwards the parsed command", func(t *testing.T) {
		gw.On("SendCommand", mock.Anything, "D1", telemetry.CommandHover).Return("Hovering", nil).Once()
		cmd, _ := commands.NewControlDroneCommand(v.ID(), "hover")

		msg, err := commands.NewControlDroneCommandHandler(views).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Hovering", msg)
	})

	t.Run("switch drone", func(t *testing.T) {
		cmd, _ := commands.NewSwitchViewDroneCommand(v.ID(), "D7")

		require.NoError(t, commands.NewSwitchViewDroneCommandHandler(views).Handle(ctx, cmd))
		assert.Equal(t, "D7", v.State().DroneID)
	})

	t.Run("close removes the view", func(t *testing.T) {
		views.On("Remove", v.ID()).Return(nil).Once()
		cmd, _ := commands.NewCloseViewCommand(v.ID())

		require.NoError(t, commands.NewCloseViewCommandHandler(views).Handle(ctx, cmd))
		views.AssertCalled(t, "Remove", v.ID())
	})
}

func TestReapIdleHandlers(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sessions := new(MockSessionRegistry)
	sessions.On("ReapIdle", now, 30*time.Minute).Return(2).Once()
	sessionCmd, _ := commands.NewReapIdleSessionsCommand(now, 30*time.Minute)
	n, err := commands.NewReapIdleSessionsCommandHandler(sessions).Handle(context.Background(), sessionCmd)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	views := new(MockViewRegistry)
	views.On("ReapIdle", now, 10*time.Minute).Return(0).Once()
	viewCmd, _ := commands.NewReapIdleViewsCommand(now, 10*time.Minute)
	n, err = commands.NewReapIdleViewsCommandHandler(views).Handle(context.Background(), viewCmd)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = commands.NewReapIdleSessionsCommandHandler(sessions).Handle(context.Background(), commands.ReapIdleSessionsCommand{})
	require.ErrorIs(t, err, commands.ErrReapIdleSessionsCommandIsNotConstructed)
}
