// Package docs registers the operator API document with swag so the
// swagger UI served by echo-swagger renders the same contract the servers
// package routes.
package docs

import (
	"log/slog"

	"missionctl/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

// ReadDoc renders the embedded OpenAPI document as JSON.
func (openAPIDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		slog.Error("Failed to load OpenAPI document", "error", err)
		return "{}"
	}
	raw, err := swagger.MarshalJSON()
	if err != nil {
		slog.Error("Failed to render OpenAPI document", "error", err)
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
