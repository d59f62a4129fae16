package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Activate mission control
	// (POST /sessions)
	CreateSession(ctx echo.Context) error

	// Session state
	// (GET /sessions/{sessionId})
	GetSession(ctx echo.Context, sessionId SessionId) error

	// Leave mission control
	// (DELETE /sessions/{sessionId})
	DeleteSession(ctx echo.Context, sessionId SessionId) error

	// Refresh and list delivery drones
	// (GET /sessions/{sessionId}/drones)
	ListDrones(ctx echo.Context, sessionId SessionId) error

	// Select a drone, prompting for source coordinates when it has none
	// (POST /sessions/{sessionId}/drones/{droneId}/select)
	SelectDrone(ctx echo.Context, sessionId SessionId, droneId DroneId) error

	// Open the coordinate prompt prefilled with the drone's source
	// (POST /sessions/{sessionId}/drones/{droneId}/coordinates)
	RequestCoordinateUpdate(ctx echo.Context, sessionId SessionId, droneId DroneId) error

	// Submit the coordinates entered in the prompt
	// (POST /sessions/{sessionId}/prompt)
	SubmitCoordinates(ctx echo.Context, sessionId SessionId) error

	// Dismiss the coordinate prompt
	// (DELETE /sessions/{sessionId}/prompt)
	CancelPrompt(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/facility)
	SelectFacility(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/rack)
	SelectRack(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/package)
	SelectPackage(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/launch)
	LaunchMission(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/reset)
	ResetMission(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/otp/resend)
	ResendOtp(ctx echo.Context, sessionId SessionId) error

	// (POST /sessions/{sessionId}/pickup)
	ConfirmPickup(ctx echo.Context, sessionId SessionId) error

	// (POST /monitoring/views)
	OpenView(ctx echo.Context) error

	// (GET /monitoring/views/{viewId})
	GetView(ctx echo.Context, viewId ViewId) error

	// (PUT /monitoring/views/{viewId})
	SwitchViewDrone(ctx echo.Context, viewId ViewId) error

	// (DELETE /monitoring/views/{viewId})
	CloseView(ctx echo.Context, viewId ViewId) error

	// (GET /monitoring/views/{viewId}/camera)
	GetCameraUrl(ctx echo.Context, viewId ViewId) error

	// WebSocket stream of view states, one JSON View per message
	// (GET /monitoring/views/{viewId}/stream)
	StreamView(ctx echo.Context, viewId ViewId) error

	// (POST /monitoring/views/{viewId}/commands/{command})
	SendDroneCommand(ctx echo.Context, viewId ViewId, command SendDroneCommandParamsCommand) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateSession converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateSession(ctx)
	return err
}

// GetSession converts echo context to params.
func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSession(ctx, sessionId)
	return err
}

// DeleteSession converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteSession(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteSession(ctx, sessionId)
	return err
}

// ListDrones converts echo context to params.
func (w *ServerInterfaceWrapper) ListDrones(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDrones(ctx, sessionId)
	return err
}

// SelectDrone converts echo context to params.
func (w *ServerInterfaceWrapper) SelectDrone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SelectDrone(ctx, sessionId, droneId)
	return err
}

// RequestCoordinateUpdate converts echo context to params.
func (w *ServerInterfaceWrapper) RequestCoordinateUpdate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RequestCoordinateUpdate(ctx, sessionId, droneId)
	return err
}

// SubmitCoordinates converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitCoordinates(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SubmitCoordinates(ctx, sessionId)
	return err
}

// CancelPrompt converts echo context to params.
func (w *ServerInterfaceWrapper) CancelPrompt(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelPrompt(ctx, sessionId)
	return err
}

// SelectFacility converts echo context to params.
func (w *ServerInterfaceWrapper) SelectFacility(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SelectFacility(ctx, sessionId)
	return err
}

// SelectRack converts echo context to params.
func (w *ServerInterfaceWrapper) SelectRack(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SelectRack(ctx, sessionId)
	return err
}

// SelectPackage converts echo context to params.
func (w *ServerInterfaceWrapper) SelectPackage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SelectPackage(ctx, sessionId)
	return err
}

// LaunchMission converts echo context to params.
func (w *ServerInterfaceWrapper) LaunchMission(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LaunchMission(ctx, sessionId)
	return err
}

// ResetMission converts echo context to params.
func (w *ServerInterfaceWrapper) ResetMission(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ResetMission(ctx, sessionId)
	return err
}

// ResendOtp converts echo context to params.
func (w *ServerInterfaceWrapper) ResendOtp(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ResendOtp(ctx, sessionId)
	return err
}

// ConfirmPickup converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmPickup(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "sessionId" -------------
	var sessionId SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfirmPickup(ctx, sessionId)
	return err
}

// OpenView converts echo context to params.
func (w *ServerInterfaceWrapper) OpenView(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.OpenView(ctx)
	return err
}

// GetView converts echo context to params.
func (w *ServerInterfaceWrapper) GetView(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetView(ctx, viewId)
	return err
}

// SwitchViewDrone converts echo context to params.
func (w *ServerInterfaceWrapper) SwitchViewDrone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SwitchViewDrone(ctx, viewId)
	return err
}

// CloseView converts echo context to params.
func (w *ServerInterfaceWrapper) CloseView(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CloseView(ctx, viewId)
	return err
}

// GetCameraUrl converts echo context to params.
func (w *ServerInterfaceWrapper) GetCameraUrl(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCameraUrl(ctx, viewId)
	return err
}

// StreamView converts echo context to params.
func (w *ServerInterfaceWrapper) StreamView(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StreamView(ctx, viewId)
	return err
}

// SendDroneCommand converts echo context to params.
func (w *ServerInterfaceWrapper) SendDroneCommand(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "viewId" -------------
	var viewId ViewId

	err = runtime.BindStyledParameterWithOptions("simple", "viewId", ctx.Param("viewId"), &viewId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter viewId: %s", err))
	}

	// ------------- Path parameter "command" -------------
	var command SendDroneCommandParamsCommand

	err = runtime.BindStyledParameterWithOptions("simple", "command", ctx.Param("command"), &command, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter command: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SendDroneCommand(ctx, viewId, command)
	return err
}

// EchoRouter is an interface for both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/sessions", wrapper.CreateSession)
	router.GET(baseURL+"/sessions/:sessionId", wrapper.GetSession)
	router.DELETE(baseURL+"/sessions/:sessionId", wrapper.DeleteSession)
	router.GET(baseURL+"/sessions/:sessionId/drones", wrapper.ListDrones)
	router.POST(baseURL+"/sessions/:sessionId/drones/:droneId/select", wrapper.SelectDrone)
	router.POST(baseURL+"/sessions/:sessionId/drones/:droneId/coordinates", wrapper.RequestCoordinateUpdate)
	router.POST(baseURL+"/sessions/:sessionId/prompt", wrapper.SubmitCoordinates)
	router.DELETE(baseURL+"/sessions/:sessionId/prompt", wrapper.CancelPrompt)
	router.POST(baseURL+"/sessions/:sessionId/facility", wrapper.SelectFacility)
	router.POST(baseURL+"/sessions/:sessionId/rack", wrapper.SelectRack)
	router.POST(baseURL+"/sessions/:sessionId/package", wrapper.SelectPackage)
	router.POST(baseURL+"/sessions/:sessionId/launch", wrapper.LaunchMission)
	router.POST(baseURL+"/sessions/:sessionId/reset", wrapper.ResetMission)
	router.POST(baseURL+"/sessions/:sessionId/otp/resend", wrapper.ResendOtp)
	router.POST(baseURL+"/sessions/:sessionId/pickup", wrapper.ConfirmPickup)
	router.POST(baseURL+"/monitoring/views", wrapper.OpenView)
	router.GET(baseURL+"/monitoring/views/:viewId", wrapper.GetView)
	router.PUT(baseURL+"/monitoring/views/:viewId", wrapper.SwitchViewDrone)
	router.DELETE(baseURL+"/monitoring/views/:viewId", wrapper.CloseView)
	router.GET(baseURL+"/monitoring/views/:viewId/camera", wrapper.GetCameraUrl)
	router.GET(baseURL+"/monitoring/views/:viewId/stream", wrapper.StreamView)
	router.POST(baseURL+"/monitoring/views/:viewId/commands/:command", wrapper.SendDroneCommand)
}
