package handlers

import (
	"fmt"
	"strings"

	"receiptai/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when session context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getSessionFromContext extracts the session placed there by the auth
// middleware. Returns ErrUnauthorized if it is missing or invalid.
func getSessionFromContext(c echo.Context) (*models.Session, error) {
	sessionValue := c.Get(SessionContextKey)
	if sessionValue == nil {
		return nil, ErrUnauthorized
	}

	session, ok := sessionValue.(*models.Session)
	if !ok || session == nil {
		return nil, ErrUnauthorized
	}

	return session, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
