package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether an access token is a JWT whose expiry
// has clearly passed. The signature is NOT verified here; the identity
// provider is the authority on token validity and this check only
// short-circuits the obvious case. Opaque (non-JWT) tokens and tokens
// without an exp claim always pass through to the provider.
func tokenExpired(tokenString string) bool {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
