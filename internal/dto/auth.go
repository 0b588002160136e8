package dto

// Auth Request DTOs

// SignInRequest contains password sign-in credentials
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest contains new account details. The identity provider
// enforces its own password policy; the minimum here only mirrors the
// auth form's client-side check.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RecoverRequest asks for a password-reset email
type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Auth Response DTOs

// TokenResponse contains the issued session tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// SessionResponse is the signed-in user's view for the UI shell
// (nav bar identity and tier gating of invoice controls)
type SessionResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Tier   string `json:"tier"`
}
