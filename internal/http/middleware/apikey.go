package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKey guards the tool endpoints with a static shared key checked
// against the X-API-Key header. Constant-time comparison; an empty
// configured key rejects everything rather than opening the surface.
func APIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get("X-API-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or missing API key",
				})
			}
			return next(c)
		}
	}
}
