package handlers

import (
	"os"

	"cestodamore/internal/app"
	"cestodamore/internal/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SetupRoutes sets up all API routes
func SetupRoutes(e *echo.Echo, services *app.Services) {
	toolHandler := NewToolHandler(services.Tools)

	// Liveness probe stays open.
	e.GET("/health", toolHandler.Health)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		log.Warn().Msg("API_KEY not set, tool endpoints will reject every call")
	}

	protected := e.Group("", middleware.APIKey(apiKey))
	protected.GET("/tools", toolHandler.ListTools)
	protected.POST("/call", toolHandler.CallTool)
}
