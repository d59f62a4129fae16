package http

import (
	"errors"
	"log/slog"
	"net/http"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/application/usecases/queries"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/generated/servers"
	"missionctl/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write side of the operator API.
type CommandHandlers struct {
	CreateSession           commands.CreateSessionCommandHandler
	CloseSession            commands.CloseSessionCommandHandler
	SelectDrone             commands.SelectDroneCommandHandler
	RequestCoordinateUpdate commands.RequestCoordinateUpdateCommandHandler
	SubmitCoordinates       commands.SubmitCoordinatesCommandHandler
	CancelPrompt            commands.CancelPromptCommandHandler
	SelectFacility          commands.SelectFacilityCommandHandler
	SelectRack              commands.SelectRackCommandHandler
	SelectPackage           commands.SelectPackageCommandHandler
	LaunchMission           commands.LaunchMissionCommandHandler
	ResetMission            commands.ResetMissionCommandHandler
	ResendOtp               commands.ResendOtpCommandHandler
	ConfirmPickup           commands.ConfirmPickupCommandHandler

	OpenView        commands.OpenViewCommandHandler
	SwitchViewDrone commands.SwitchViewDroneCommandHandler
	CloseView       commands.CloseViewCommandHandler
	ControlDrone    commands.ControlDroneCommandHandler
}

// QueryHandlers groups the read side of the operator API.
type QueryHandlers struct {
	GetSession   queries.GetSessionQueryHandler
	ListDrones   queries.ListDronesQueryHandler
	GetView      queries.GetViewQueryHandler
	GetCameraURL queries.GetCameraURLQueryHandler
	StreamView   queries.StreamViewQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers

	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The map renderer is served from another origin, same as the REST calls
			// allowed by the CORS middleware. The API carries no credentials.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "http_server"),
	}
}

// statusFor maps the error taxonomy onto HTTP status codes. Validation wins
// over everything else because it means no remote call was made.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusiness):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: errs.Message(err),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromString(id.String())
}
