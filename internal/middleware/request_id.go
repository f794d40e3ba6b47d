package middleware

import (
	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader = "X-Trace-ID"

	maxInboundTraceIDLength = 64
)

// RequestID tags every request with a trace ID. A caller-supplied X-Trace-ID
// is reused when it is short printable ASCII; anything else gets a fresh UUID.
// The ID is echoed in the response header, stored on the echo context for
// handlers and attached to the request context for services.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if !acceptableTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.SetRequest(c.Request().WithContext(services.WithTraceID(c.Request().Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(handlers.TraceIDContextKey).(string)
	return traceID
}

func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxInboundTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
