package middleware

import (
	stderrors "errors"
	"strings"

	"receiptai/internal/errors"
	"receiptai/internal/handlers"
	"receiptai/internal/identity"
	"receiptai/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireSession resolves the caller's access token to a session before
// any protected handler runs. The token comes from the Authorization
// header, falling back to the session cookie set by the OAuth callback.
// An absent or unusable session is a single 401; nothing protected
// renders without one.
func RequireSession(identityAPI services.IdentityAPIInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractAccessToken(c)
			if token == "" {
				return handlers.SendError(c, errors.AuthNoSession)
			}

			session, err := identityAPI.GetSession(c.Request().Context(), token)
			if err != nil {
				if stderrors.Is(err, identity.ErrNoSession) {
					return handlers.SendError(c, errors.AuthNoSession)
				}
				return handlers.SendError(c, errors.AuthProviderError)
			}

			c.Set(handlers.SessionContextKey, session)
			return next(c)
		}
	}
}

func extractAccessToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(handlers.AccessTokenCookie)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
