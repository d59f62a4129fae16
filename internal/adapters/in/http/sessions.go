package http

import (
	"net/http"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/application/usecases/queries"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateSession handles POST /api/v1/sessions - activates mission control.
func (s *Server) CreateSession(ctx echo.Context) error {
	var body servers.CreateSessionRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateSessionCommand(id, deref(body.AutoSelectDroneId), deref(body.SelectedRack))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.CreateSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, id, http.StatusCreated)
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondSession(ctx, id, http.StatusOK)
}

// DeleteSession handles DELETE /api/v1/sessions/{sessionId} - stops the
// session's pollers and forgets it.
func (s *Server) DeleteSession(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCloseSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.CloseSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDrones handles GET /api/v1/sessions/{sessionId}/drones - refreshes the
// delivery drone list from the tower backend.
func (s *Server) ListDrones(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListDronesQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	drones, err := s.queries.ListDrones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Drone, len(drones))
	for i, d := range drones {
		response[i] = toDrone(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) SelectDrone(ctx echo.Context, sessionID servers.SessionId, droneID servers.DroneId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewSelectDroneCommand(id, droneID)
		if err != nil {
			return err
		}
		return s.commands.SelectDrone.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) RequestCoordinateUpdate(ctx echo.Context, sessionID servers.SessionId, droneID servers.DroneId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewRequestCoordinateUpdateCommand(id, droneID)
		if err != nil {
			return err
		}
		return s.commands.RequestCoordinateUpdate.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) SubmitCoordinates(ctx echo.Context, sessionID servers.SessionId) error {
	var body servers.SubmitCoordinatesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewSubmitCoordinatesCommand(id, body.SourceLat, body.SourceLng)
		if err != nil {
			return err
		}
		return s.commands.SubmitCoordinates.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) CancelPrompt(ctx echo.Context, sessionID servers.SessionId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewCancelPromptCommand(id)
		if err != nil {
			return err
		}
		return s.commands.CancelPrompt.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) SelectFacility(ctx echo.Context, sessionID servers.SessionId) error {
	var body servers.SelectFacilityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewSelectFacilityCommand(id, body.Name)
		if err != nil {
			return err
		}
		return s.commands.SelectFacility.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) SelectRack(ctx echo.Context, sessionID servers.SessionId) error {
	var body servers.SelectRackJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewSelectRackCommand(id, body.RackColumn)
		if err != nil {
			return err
		}
		return s.commands.SelectRack.Handle(ctx.Request().Context(), cmd)
	})
}

// SelectPackage handles POST /api/v1/sessions/{sessionId}/package. An empty
// package id clears the choice.
func (s *Server) SelectPackage(ctx echo.Context, sessionID servers.SessionId) error {
	var body servers.SelectPackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewSelectPackageCommand(id, body.PackageId)
		if err != nil {
			return err
		}
		return s.commands.SelectPackage.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) LaunchMission(ctx echo.Context, sessionID servers.SessionId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewLaunchMissionCommand(id)
		if err != nil {
			return err
		}
		return s.commands.LaunchMission.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) ResetMission(ctx echo.Context, sessionID servers.SessionId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewResetMissionCommand(id)
		if err != nil {
			return err
		}
		return s.commands.ResetMission.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) ResendOtp(ctx echo.Context, sessionID servers.SessionId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewResendOtpCommand(id)
		if err != nil {
			return err
		}
		return s.commands.ResendOtp.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) ConfirmPickup(ctx echo.Context, sessionID servers.SessionId) error {
	return s.mutateSession(ctx, sessionID, func(id kernel.UUID) error {
		cmd, err := commands.NewConfirmPickupCommand(id)
		if err != nil {
			return err
		}
		return s.commands.ConfirmPickup.Handle(ctx.Request().Context(), cmd)
	})
}

// mutateSession runs a session command and answers with the resulting state.
func (s *Server) mutateSession(ctx echo.Context, sessionID servers.SessionId, run func(kernel.UUID) error) error {
	id, err := toKernelUUID(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := run(id); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondSession(ctx, id, http.StatusOK)
}

func (s *Server) respondSession(ctx echo.Context, id kernel.UUID, code int) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	state, err := s.queries.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	session, err := toSession(state)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, session)
}
