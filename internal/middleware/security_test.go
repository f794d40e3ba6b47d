package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budgetbuddy/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErrorDetail(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorDetail {
	t.Helper()
	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestSecurityHeaders(t *testing.T) {
	want := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
		"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
		"Cache-Control":             "no-store, no-cache, must-revalidate, private",
		"Pragma":                    "no-cache",
	}

	for _, status := range []int{http.StatusOK, http.StatusUnprocessableEntity} {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/accounts", nil), rec)

		err := SecurityHeaders()(func(c echo.Context) error {
			return c.JSON(status, map[string]string{"balance": "0.00"})
		})(c)
		require.NoError(t, err)
		assert.Equal(t, status, rec.Code)

		for header, value := range want {
			assert.Equal(t, value, rec.Header().Get(header), "%s on %d", header, status)
		}
	}
}
