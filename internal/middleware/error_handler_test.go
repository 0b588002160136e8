package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"receiptai/internal/dto"
	"receiptai/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	suite.Run(t, new(ErrorHandlerSuite))
}

type ErrorHandlerSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *ErrorHandlerSuite) SetupTest() {
	s.e = echo.New()
}

func (s *ErrorHandlerSuite) context() (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *ErrorHandlerSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *ErrorHandlerSuite) TestEchoHTTPError() {
	rec, c := s.context()

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decode(rec)
	s.Equal("Not Found", resp.Error.Message)
}

func (s *ErrorHandlerSuite) TestValidationErrors() {
	v := validator.New()
	err := v.Struct(dto.SignInRequest{Email: "not-an-email", Password: ""})
	s.Require().Error(err)

	rec, c := s.context()
	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(errors.ValidationGeneral), resp.Error.Code)
	s.Len(resp.Error.Details, 2)
}

func (s *ErrorHandlerSuite) TestUnknownErrorBecomesSystemError() {
	rec, c := s.context()

	CustomHTTPErrorHandler(stderrors.New("pipe closed"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
}

func (s *ErrorHandlerSuite) TestCommittedResponseIsLeftAlone() {
	rec, c := s.context()
	s.NoError(c.NoContent(http.StatusOK))

	CustomHTTPErrorHandler(echo.ErrBadRequest, c)

	s.Equal(http.StatusOK, rec.Code)
}
