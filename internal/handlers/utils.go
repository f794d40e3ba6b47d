package handlers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
	"budgetbuddy/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the user set by RequireAuth
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// echo's own view of the peer.
func getClientIP(c echo.Context) string {
	header := c.Request().Header
	if first, _, _ := strings.Cut(header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if realIP := header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.RealIP()
}

// NewValidator adapts the shared budgetbuddy rule set to echo.Validator.
func NewValidator() echo.Validator {
	return validation.GetValidator()
}

// requestContext carries the trace ID into the service layer
func requestContext(c echo.Context) context.Context {
	return services.WithTraceID(c.Request().Context(), getTraceID(c))
}

// bindAndValidate decodes the body and runs struct validation. On failure
// the error response has already been written and handled is true.
func bindAndValidate(c echo.Context, req interface{}) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			return true, SendValidationError(c, fields)
		}
		return true, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return false, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// queryParser accumulates query parameter errors so every bad parameter is
// reported in one response
type queryParser struct {
	c      echo.Context
	errors map[string]string
}

func newQueryParser(c echo.Context) *queryParser {
	return &queryParser{c: c, errors: map[string]string{}}
}

func (p *queryParser) fail(name, message string) {
	p.errors[name] = message
}

func (p *queryParser) valid() bool {
	return len(p.errors) == 0
}

func (p *queryParser) string(name string) string {
	return strings.TrimSpace(p.c.QueryParam(name))
}

func (p *queryParser) int(name string, defaultValue int) int {
	raw := p.string(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		p.fail(name, "A valid non-negative integer is required.")
		return defaultValue
	}
	return value
}

func (p *queryParser) bool(name string) *bool {
	raw := p.string(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, "Must be true or false.")
		return nil
	}
	return &value
}

func (p *queryParser) date(name string) *time.Time {
	raw := p.string(name)
	if raw == "" {
		return nil
	}

	value, err := models.ParseDate(raw)
	if err != nil {
		p.fail(name, "Date has wrong format. Use YYYY-MM-DD.")
		return nil
	}
	return &value
}

func (p *queryParser) decimal(name string) *decimal.Decimal {
	raw := p.string(name)
	if raw == "" {
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(name, "A valid number is required.")
		return nil
	}
	return &value
}

func (p *queryParser) uuid(name string) *uuid.UUID {
	raw := p.string(name)
	if raw == "" {
		return nil
	}

	value, err := uuid.Parse(raw)
	if err != nil {
		p.fail(name, "Must be a valid UUID.")
		return nil
	}
	return &value
}

func (p *queryParser) oneOf(name string, allowed []string) string {
	raw := p.string(name)
	if raw == "" {
		return ""
	}
	for _, candidate := range allowed {
		if raw == candidate {
			return raw
		}
	}
	p.fail(name, fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")))
	return ""
}

func (p *queryParser) page() models.Page {
	return models.Page{
		Limit:  p.int("limit", models.DefaultPageLimit),
		Offset: p.int("offset", 0),
	}.Normalized()
}

// respond writes the accumulated errors. It must only be called when valid() is false.
func (p *queryParser) respond() error {
	return SendError(p.c, errors.ValidationInvalidQuery, errors.WithDetails(formatFieldErrors(p.errors)...))
}

func formatFieldErrors(fields map[string]string) []string {
	details := make([]string, 0, len(fields))
	for field, message := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)
	return details
}

func paginated[T any](results []T, total int64, offset, limit int) dto.PaginatedResponse[T] {
	return dto.PaginatedResponse[T]{
		Results: results,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	}
}
