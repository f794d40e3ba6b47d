package middleware

import (
	"log/slog"
	"runtime/debug"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs
// the stack. If the handler already started writing, only the log remains.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				req := c.Request()
				logger.ErrorContext(req.Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"method", req.Method,
					"path", req.URL.Path,
					"panic", recovered,
					"stack", string(debug.Stack()))

				err = nil
				if c.Response().Committed {
					return
				}
				if sendErr := handlers.SendError(c, errors.SystemInternalError); sendErr != nil {
					logger.Error("failed to write panic response", "trace_id", GetTraceID(c), "error", sendErr)
				}
			}()

			return next(c)
		}
	}
}
