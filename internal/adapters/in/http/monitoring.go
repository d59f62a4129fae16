package http

import (
	"net/http"
	"time"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/application/usecases/queries"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/generated/servers"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	// streamWriteWait bounds a single frame write to a slow client.
	streamWriteWait = 10 * time.Second

	// streamPingPeriod keeps idle connections alive through proxies.
	streamPingPeriod = 30 * time.Second
)

// OpenView handles POST /api/v1/monitoring/views - starts polling telemetry
// for a drone.
func (s *Server) OpenView(ctx echo.Context) error {
	var body servers.OpenViewJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewOpenViewCommand(id, body.DroneId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.OpenView.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondView(ctx, id, http.StatusCreated)
}

func (s *Server) GetView(ctx echo.Context, viewID servers.ViewId) error {
	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondView(ctx, id, http.StatusOK)
}

// SwitchViewDrone handles PUT /api/v1/monitoring/views/{viewId}. The view
// restarts from an all-unknown snapshot for the new drone.
func (s *Server) SwitchViewDrone(ctx echo.Context, viewID servers.ViewId) error {
	var body servers.SwitchViewDroneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSwitchViewDroneCommand(id, body.DroneId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.SwitchViewDrone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondView(ctx, id, http.StatusOK)
}

func (s *Server) CloseView(ctx echo.Context, viewID servers.ViewId) error {
	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCloseViewCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.CloseView.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) GetCameraUrl(ctx echo.Context, viewID servers.ViewId) error { //nolint:revive // generated name
	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetCameraURLQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	url, err := s.queries.GetCameraURL.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.CameraUrl{CameraUrl: url})
}

// SendDroneCommand handles POST /api/v1/monitoring/views/{viewId}/commands/{command}.
func (s *Server) SendDroneCommand(ctx echo.Context, viewID servers.ViewId, command servers.SendDroneCommandParamsCommand) error {
	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewControlDroneCommand(id, string(command))
	if err != nil {
		return s.fail(ctx, err)
	}
	message, err := s.commands.ControlDrone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.CommandResult{Message: message})
}

// StreamView handles GET /api/v1/monitoring/views/{viewId}/stream. After the
// upgrade every state change of the view is sent as one JSON View text frame,
// starting with the current state. The stream ends when the client goes away
// or the view is closed.
func (s *Server) StreamView(ctx echo.Context, viewID servers.ViewId) error {
	id, err := toKernelUUID(viewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewStreamViewQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	states, unsubscribe, err := s.queries.StreamView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer unsubscribe()

	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade has already answered the client.
		s.logger.WarnContext(ctx.Request().Context(), "Unable to upgrade view stream", "view_id", id.String(), "error", err)
		return nil
	}
	defer conn.Close()

	logger := s.logger.With("view_id", id.String())
	logger.Debug("View stream opened")

	// Control frames are only processed while reading.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			logger.Debug("View stream closed by client")
			return nil

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return nil
			}

		case state, ok := <-states:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "view closed"),
					time.Now().Add(streamWriteWait))
				logger.Debug("View stream ended")
				return nil
			}
			view, err := toView(state)
			if err != nil {
				logger.Error("Unable to render view state", "error", err)
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(view); err != nil {
				logger.Debug("View stream write failed", "error", err)
				return nil
			}
		}
	}
}

func (s *Server) respondView(ctx echo.Context, id kernel.UUID, code int) error {
	query, err := queries.NewGetViewQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	state, err := s.queries.GetView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := toView(state)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, view)
}
