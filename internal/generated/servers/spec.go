// Package servers holds the operator API contract: the embedded OpenAPI
// document, its DTOs and the echo routing glue that binds path parameters
// before calling a ServerInterface. The layout follows what oapi-codegen
// emits for echo servers; openapi.yml is the source of truth.
package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// BaseURL is the prefix every operation is served under.
const BaseURL = "/api/v1"

//go:embed openapi.yml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return append([]byte(nil), rawSpec...)
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
