package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document exactly as shipped.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document. It is safe to modify the result,
// every call parses a fresh copy.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}

	return swagger, nil
}
