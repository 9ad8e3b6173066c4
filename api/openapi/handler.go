// Package openapi serves the OpenAPI 3.1 document generated from the
// registered huma operations, plus a Swagger UI page.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Opty Search API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// Spec renders the OpenAPI document of api as JSON or YAML.
func Spec(api huma.API, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(api.OpenAPI(), "", "  ")
	case "yaml":
		return api.OpenAPI().YAML()
	default:
		return nil, fmt.Errorf("unsupported spec format %q", format)
	}
}

// RegisterRoutes adds Swagger UI and spec endpoints to the Echo instance.
// The spec is rendered on each request so late-registered operations appear.
func RegisterRoutes(e *echo.Echo, api huma.API) {
	e.GET("/swagger/swagger.json", serveSpec(api, "json", echo.MIMEApplicationJSON))
	e.GET("/swagger/swagger.yaml", serveSpec(api, "yaml", "text/yaml"))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveSpec(api huma.API, format, contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := Spec(api, format)
		if err != nil {
			return c.String(http.StatusInternalServerError, "spec not available")
		}
		return c.Blob(http.StatusOK, contentType, data)
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
