package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"receiptai/internal/dto"
	"receiptai/internal/errors"
	"receiptai/internal/identity"
	"receiptai/internal/services"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie carries the session token for browser clients that
// completed the OAuth redirect flow. API clients use the Authorization
// header instead.
const AccessTokenCookie = "access_token"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	identityAPI  services.IdentityAPIInterface
	provisioning services.ProvisioningServiceInterface
	uploads      services.UploadServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(identityAPI services.IdentityAPIInterface, provisioning services.ProvisioningServiceInterface, uploads services.UploadServiceInterface) *AuthHandler {
	return &AuthHandler{
		identityAPI:  identityAPI,
		provisioning: provisioning,
		uploads:      uploads,
	}
}

// SignIn authenticates with email and password and returns the issued
// tokens.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	grant, err := h.identityAPI.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return sendIdentityError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		TokenType:    grant.TokenType,
		ExpiresIn:    grant.ExpiresIn,
	})
}

// SignUp registers a new account. The identity provider sends the
// confirmation email; no session is issued until it is confirmed.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.identityAPI.SignUp(c.Request().Context(), req.Email, req.Password); err != nil {
		return sendIdentityError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Check your email for a confirmation link.",
	})
}

// Recover asks the provider to email a password-reset link. Always
// reports success for unknown addresses; the provider decides whether
// to send anything.
func (h *AuthHandler) Recover(c echo.Context) error {
	var req dto.RecoverRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.identityAPI.RequestPasswordReset(c.Request().Context(), req.Email, ""); err != nil {
		var perr *identity.ProviderError
		if !stderrors.As(err, &perr) {
			return SendError(c, errors.AuthProviderError)
		}
		// Provider-side rejections are not surfaced so the endpoint
		// cannot be used to probe which addresses exist.
		slog.Debug("password reset request rejected", "status", perr.Status)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Password reset email sent.",
	})
}

// SignOut invalidates the session at the provider and drops the user's
// in-memory upload feed. Provider failures do not block sign-out.
func (h *AuthHandler) SignOut(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	if err := h.identityAPI.SignOut(c.Request().Context(), session.AccessToken); err != nil {
		slog.Debug("provider sign-out failed", "error", err, "user_id", session.UserID)
	}

	h.uploads.ClearResults(session.UserID)
	clearAccessTokenCookie(c)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Signed out",
	})
}

// Callback completes the OAuth redirect flow: it trades the provider's
// authorization code for a session and sends the browser to the
// dashboard. Failures land back on the auth page with an error marker
// in the query string.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, "/auth?error=missing_code")
	}

	grant, err := h.identityAPI.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		slog.Warn("authorization code exchange failed", "error", err, "client_ip", getClientIP(c))
		return c.Redirect(http.StatusFound, "/auth?error=oauth_failed")
	}

	session := grant.Session
	if session.IsNewUser() {
		h.provisioning.NotifyAsync(session.UserID, session.Email)
	}

	setAccessTokenCookie(c, grant.AccessToken, grant.ExpiresIn)
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Session returns the signed-in user's identity and tier for the UI
// shell.
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoSession)
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		UserID: session.UserID,
		Email:  session.Email,
		Tier:   string(session.Tier),
	})
}

// sendIdentityError maps identity client failures onto the error code
// registry.
func sendIdentityError(c echo.Context, err error) error {
	if stderrors.Is(err, identity.ErrInvalidCredentials) {
		return SendError(c, errors.AuthInvalidCredentials)
	}

	var perr *identity.ProviderError
	if stderrors.As(err, &perr) {
		// Provider messages are written for end users and safe to show
		// on the auth form.
		return SendError(c, errors.AuthProviderError, errors.WithMessage(perr.Message))
	}

	return SendError(c, errors.AuthProviderError)
}

func setAccessTokenCookie(c echo.Context, token string, expiresIn int) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   expiresIn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAccessTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
