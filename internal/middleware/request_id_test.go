package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestRequestID(t *testing.T) {
	suite.Run(t, new(RequestIDSuite))
}

type RequestIDSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *RequestIDSuite) SetupTest() {
	s.e = echo.New()
}

func (s *RequestIDSuite) TestGeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.NotEmpty(GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.NotEmpty(rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDSuite) TestKeepsIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-from-browser")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal("trace-from-browser", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal("trace-from-browser", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDSuite) TestGetTraceIDWithoutMiddleware() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Empty(GetTraceID(c))
}
