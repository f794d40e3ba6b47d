package middleware

import (
	"log/slog"

	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActivityLogger writes one UserActivity row after each request. The user is
// recorded when RequireAuth authenticated the request. Write failures never
// affect the response.
func ActivityLogger(auditService services.AuditServiceInterface, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			activity := &models.UserActivity{
				Path:      c.Request().URL.Path,
				Method:    c.Request().Method,
				IP:        c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			}
			if userID, ok := c.Get(handlers.UserIDContextKey).(uuid.UUID); ok && userID != uuid.Nil {
				activity.UserID = &userID
			}

			if recordErr := auditService.RecordActivity(activity); recordErr != nil {
				logger.Debug("failed to record user activity",
					"error", recordErr,
					"path", activity.Path,
					"trace_id", GetTraceID(c))
			}

			return err
		}
	}
}
