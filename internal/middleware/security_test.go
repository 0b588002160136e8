package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSecurityHeaders(t *testing.T) {
	suite.Run(t, new(SecurityHeadersSuite))
}

type SecurityHeadersSuite struct {
	suite.Suite
}

func (s *SecurityHeadersSuite) TestHeadersAreSet() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))

	headers := rec.Header()
	s.Equal("nosniff", headers.Get("X-Content-Type-Options"))
	s.Equal("DENY", headers.Get("X-Frame-Options"))
	s.Equal("default-src 'self'", headers.Get("Content-Security-Policy"))
	s.Contains(headers.Get("Cache-Control"), "no-store")
}
