package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorResponseTestSuite struct {
	suite.Suite
}

func TestErrorResponseSuite(t *testing.T) {
	suite.Run(t, new(ErrorResponseTestSuite))
}

func (s *ErrorResponseTestSuite) TestNewErrorResponse() {
	resp := NewErrorResponse(AuthNoSession, "trace-123")

	s.Equal("AUTH_002", resp.Error.Code)
	s.Equal(GetErrorMessage(AuthNoSession), resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *ErrorResponseTestSuite) TestWithMessage_OverridesVerbatim() {
	resp := NewErrorResponse(UploadRejected, "trace-123", WithMessage("unsupported file type"))

	s.Equal("unsupported file type", resp.Error.Message)
	s.Equal("UPLOAD_001", resp.Error.Code)
}

func (s *ErrorResponseTestSuite) TestWithDetails() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123", WithDetails("year: is required"))
	s.Equal([]string{"year: is required"}, resp.Error.Details)
}

func (s *ErrorResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{AuthInvalidCredentials, http.StatusUnauthorized},
		{AuthNoSession, http.StatusUnauthorized},
		{AuthMissingCode, http.StatusBadRequest},
		{AuthExchangeFailed, http.StatusUnprocessableEntity},
		{AuthProviderError, http.StatusServiceUnavailable},
		{ValidationGeneral, http.StatusBadRequest},
		{UploadRejected, http.StatusUnprocessableEntity},
		{SummaryRejected, http.StatusUnprocessableEntity},
		{BackendUnreachable, http.StatusBadGateway},
		{BackendMalformedPayload, http.StatusBadGateway},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func (s *ErrorResponseTestSuite) TestToJSON_RoundTrip() {
	resp := NewErrorResponse(BackendUnreachable, "trace-xyz")

	data, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(resp.Error.Code, decoded.Error.Code)
	s.Equal(resp.Error.TraceID, decoded.Error.TraceID)
}

func (s *ErrorResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(AuthNoSession, "t").IsClientError())
	s.False(NewErrorResponse(AuthNoSession, "t").IsServerError())
	s.True(NewErrorResponse(BackendUnreachable, "t").IsServerError())
}

func (s *ErrorResponseTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(UploadRejected))
	s.False(IsValidErrorCode(ErrorCode("NOPE_001")))
}
