package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthNoSession          ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthMissingCode        ErrorCode = "AUTH_004"
	AuthExchangeFailed     ErrorCode = "AUTH_005"
	AuthProviderError      ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidType   ErrorCode = "VALIDATION_002"
	ValidationInvalidYear   ErrorCode = "VALIDATION_003"
	ValidationMissingFile   ErrorCode = "VALIDATION_004"
	ValidationEmptyFile     ErrorCode = "VALIDATION_005"
)

// Upload error codes (UPLOAD_*)
const (
	UploadRejected ErrorCode = "UPLOAD_001"
	UploadReadFailed ErrorCode = "UPLOAD_002"
)

// Tax summary error codes (SUMMARY_*)
const (
	SummaryRejected ErrorCode = "SUMMARY_001"
)

// Document backend error codes (BACKEND_*)
const (
	BackendUnreachable      ErrorCode = "BACKEND_001"
	BackendMalformedPayload ErrorCode = "BACKEND_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthNoSession:          "No active session, sign in to continue",
	AuthExpiredToken:       "Session has expired, sign in again",
	AuthMissingCode:        "Authorization code is missing",
	AuthExchangeFailed:     "Sign-in could not be completed",
	AuthProviderError:      "Identity provider is unavailable",

	// Validation errors
	ValidationGeneral:     "Validation failed",
	ValidationInvalidType: "Document type must be receipt or invoice",
	ValidationInvalidYear: "Year is outside the supported range",
	ValidationMissingFile: "No file was provided",
	ValidationEmptyFile:   "The provided file is empty",

	// Upload errors
	UploadRejected:   "The backend rejected this document",
	UploadReadFailed: "The uploaded file could not be read",

	// Tax summary errors
	SummaryRejected: "The backend rejected this summary request",

	// Document backend errors
	BackendUnreachable:      "Document backend is unreachable, try again shortly",
	BackendMalformedPayload: "Document backend returned an unexpected response",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
