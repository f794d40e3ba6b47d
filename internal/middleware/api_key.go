package middleware

import (
	"crypto/subtle"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/handlers"

	"github.com/labstack/echo/v4"
)

// MobileAPIKeyHeader carries the key shipped with the mobile client
const MobileAPIKeyHeader = "X-Mobile-API-Key"

// RequireMobileAPIKey rejects requests without the mobile API key. An empty
// configured key accepts any non-empty header value.
func RequireMobileAPIKey(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(MobileAPIKeyHeader)
			if provided == "" {
				return handlers.SendError(c, errors.AuthInvalidAPIKey)
			}

			if expected != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
				return handlers.SendError(c, errors.AuthInvalidAPIKey)
			}

			return next(c)
		}
	}
}
