// Package http exposes the order lifecycle over REST with echo.
package http

import (
	"net/http"

	_ "orderflow/internal/generated/docs" // registers doc.json for the Swagger UI
	"orderflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes mounts the API, the health probe, the raw OpenAPI document and the Swagger UI.
func RegisterRoutes(e *echo.Echo, server *Server) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/api/v1/openapi.json", OpenAPIDocument)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
}

// OpenAPIDocument serves the API description as JSON.
func OpenAPIDocument(c echo.Context) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, swagger)
}
