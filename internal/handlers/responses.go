package handlers

import (
	"log/slog"
	"net/http"

	"budgetbuddy/internal/errors"

	"github.com/labstack/echo/v4"
)

// Context keys shared with middleware.
const (
	TraceIDContextKey = "trace_id"
	// UserIDContextKey holds a uuid.UUID once the bearer token is accepted.
	UserIDContextKey = "user_id"
)

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the envelope for a known error code. Handlers never build
// error bodies with c.JSON or echo.NewHTTPError directly.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	body := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(body.GetHTTPStatus(), body)
}

func SendValidationError(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(fields, getTraceID(c)))
}

// SendSystemError logs err with the trace ID and answers with a bare SYSTEM_001.
func SendSystemError(c echo.Context, err error) error {
	body, cause := errors.WrapSystemError(err, getTraceID(c))

	req := c.Request()
	slog.ErrorContext(req.Context(), "request failed",
		"trace_id", body.Error.TraceID,
		"method", req.Method,
		"path", req.URL.Path,
		"error", cause)

	return c.JSON(http.StatusInternalServerError, body)
}

func sendList[T any](c echo.Context, results []T, total int64, offset, limit int) error {
	if results == nil {
		results = []T{}
	}
	return c.JSON(http.StatusOK, paginated(results, total, offset, limit))
}
