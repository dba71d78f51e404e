// Package apidocs embeds the OpenAPI document served at /swagger.
package apidocs

import _ "embed"

// OpenAPI is the raw openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
