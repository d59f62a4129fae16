package servers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"missionctl/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	require.Len(t, swagger.Servers, 1)
	assert.Equal(t, servers.BaseURL, swagger.Servers[0].URL)
	assert.NotNil(t, swagger.Components.Schemas["Session"])
	assert.NotNil(t, swagger.Components.Schemas["View"])
}

// Every documented operation must have a registered route and vice versa.
func TestRoutesMatchDocument(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	documented := map[string]bool{}
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			documented[method+" "+servers.BaseURL+path] = true
		}
	}

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, nil, servers.BaseURL)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+echoToOpenAPI(r.Path)] = true
	}

	assert.Equal(t, documented, registered)
}

func echoToOpenAPI(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

type recordingServer struct {
	servers.ServerInterface
	gotSession servers.SessionId
	gotDrone   servers.DroneId
	gotCommand servers.SendDroneCommandParamsCommand
}

func (s *recordingServer) SelectDrone(ctx echo.Context, sessionID servers.SessionId, droneID servers.DroneId) error {
	s.gotSession = sessionID
	s.gotDrone = droneID
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) SendDroneCommand(ctx echo.Context, _ servers.ViewId, command servers.SendDroneCommandParamsCommand) error {
	s.gotCommand = command
	return ctx.NoContent(http.StatusOK)
}

func TestServerInterfaceWrapper_BindsPathParameters(t *testing.T) {
	rec := &recordingServer{}
	w := &servers.ServerInterfaceWrapper{Handler: rec}
	e := echo.New()

	t.Run("uuid and string", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), httptest.NewRecorder())
		c.SetParamNames("sessionId", "droneId")
		c.SetParamValues("3f1c6a1e-8d0b-4a51-9f43-6f9e2d1c0b7a", "D1")

		require.NoError(t, w.SelectDrone(c))
		assert.Equal(t, "3f1c6a1e-8d0b-4a51-9f43-6f9e2d1c0b7a", rec.gotSession.String())
		assert.Equal(t, "D1", rec.gotDrone)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), httptest.NewRecorder())
		c.SetParamNames("sessionId", "droneId")
		c.SetParamValues("not-a-uuid", "D1")

		err := w.SelectDrone(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("command", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		c.SetParamNames("viewId", "command")
		c.SetParamValues("3f1c6a1e-8d0b-4a51-9f43-6f9e2d1c0b7a", "rtl")

		require.NoError(t, w.SendDroneCommand(c))
		assert.Equal(t, servers.Rtl, rec.gotCommand)
	})
}
