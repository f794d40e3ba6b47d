package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// serve runs RequestID with the given inbound header and returns what the
// handler saw on the echo context, the request context and the response.
func (s *RequestIDTestSuite) serve(inbound string) (fromEcho, fromRequest, fromHeader string) {
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	if inbound != "" {
		req.Header.Set(TraceIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromRequest = services.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})(c)
	s.Require().NoError(err)

	return fromEcho, fromRequest, rec.Header().Get(TraceIDHeader)
}

func (s *RequestIDTestSuite) TestInboundTraceID() {
	cases := map[string]struct {
		inbound string
		reused  bool
	}{
		"absent":          {inbound: ""},
		"uuid":            {inbound: "6f1c2a0e-93b4-4c55-9d1e-0a5a3f7b2c11", reused: true},
		"opaque token":    {inbound: "mobile-ios/1.4.2#abc", reused: true},
		"contains space":  {inbound: "abc def"},
		"non ascii":       {inbound: "trace-é"},
		"too long":        {inbound: strings.Repeat("x", maxInboundTraceIDLength+1)},
		"exactly maximum": {inbound: strings.Repeat("y", maxInboundTraceIDLength), reused: true},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			fromEcho, fromRequest, fromHeader := s.serve(tc.inbound)

			s.Equal(fromEcho, fromRequest)
			s.Equal(fromEcho, fromHeader)
			if tc.reused {
				s.Equal(tc.inbound, fromEcho)
				return
			}
			_, err := uuid.Parse(fromEcho)
			s.NoError(err, "expected a generated uuid, got %q", fromEcho)
		})
	}
}

func (s *RequestIDTestSuite) TestGeneratedIDsDiffer() {
	first, _, _ := s.serve("")
	second, _, _ := s.serve("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceIDWithoutMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
