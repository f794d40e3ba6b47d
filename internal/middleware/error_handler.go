package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"
	"budgetbuddy/internal/validation"

	"github.com/labstack/echo/v4"
)

// echoStatusCodes covers the errors Echo raises on its own: routing misses,
// body limit, bad binds.
var echoStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// NewHTTPErrorHandler renders any error that escapes a handler as the
// standard envelope and counts it under the http_error metric.
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface, logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		body, status := toErrorResponse(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		req := c.Request()
		logger.Log(req.Context(), level, "request error",
			"trace_id", traceID,
			"code", body.Error.Code,
			"status", status,
			"method", req.Method,
			"path", req.URL.Path,
			"error", err)

		metrics.IncrementCounter(services.MetricHTTPError, map[string]string{
			"code":   body.Error.Code,
			"status": strconv.Itoa(status),
		})

		var writeErr error
		if req.Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "trace_id", traceID, "error", writeErr)
		}
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return errors.NewErrorResponse(echoErrorCode(httpErr.Code), traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	if fields := validation.FieldErrors(err); fields != nil {
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	body, _ := errors.WrapSystemError(err, traceID)
	return body, http.StatusInternalServerError
}

func echoErrorCode(status int) errors.ErrorCode {
	if code, ok := echoStatusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}
