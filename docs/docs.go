// Package docs embeds the OpenAPI description served by the HTTP transport.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
