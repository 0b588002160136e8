package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"receiptai/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type IdentityClientTestSuite struct {
	suite.Suite
}

func TestIdentityClientSuite(t *testing.T) {
	suite.Run(t, new(IdentityClientTestSuite))
}

func signToken(s *IdentityClientTestSuite, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	s.Require().NoError(err)
	return signed
}

func (s *IdentityClientTestSuite) TestGetSession_Success() {
	token := signToken(s, time.Now().Add(time.Hour))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/auth/v1/user", r.URL.Path)
		s.Equal("Bearer "+token, r.Header.Get("Authorization"))
		s.Equal("anon-key", r.Header.Get("apikey"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":              "user-1",
			"email":           "jo@example.com",
			"created_at":      "2026-01-02T10:00:00Z",
			"last_sign_in_at": "2026-08-27T09:00:00Z",
			"user_metadata":   map[string]interface{}{"tier": "paid"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	session, err := client.GetSession(context.Background(), token)

	s.Require().NoError(err)
	s.Equal("user-1", session.UserID)
	s.Equal("jo@example.com", session.Email)
	s.Equal(models.TierPaid, session.Tier)
	s.Equal(token, session.AccessToken)
	s.False(session.IsNewUser())
}

func (s *IdentityClientTestSuite) TestGetSession_TierFallsBackToAppMetadata() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":           "user-2",
			"email":        "sam@example.com",
			"app_metadata": map[string]interface{}{"tier": "paid"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	session, err := client.GetSession(context.Background(), "opaque-token")

	s.Require().NoError(err)
	s.Equal(models.TierPaid, session.Tier)
}

func (s *IdentityClientTestSuite) TestGetSession_DefaultsToFreeTier() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "user-3", "email": "pat@example.com"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	session, err := client.GetSession(context.Background(), "opaque-token")

	s.Require().NoError(err)
	s.Equal(models.TierFree, session.Tier)
}

func (s *IdentityClientTestSuite) TestGetSession_AbsentOnUnauthorized() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	_, err := client.GetSession(context.Background(), "bad-token")

	s.ErrorIs(err, ErrNoSession)
}

func (s *IdentityClientTestSuite) TestGetSession_TransportFailureIsNoSession() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "anon-key")
	_, err := client.GetSession(context.Background(), "some-token")

	s.ErrorIs(err, ErrNoSession)
}

func (s *IdentityClientTestSuite) TestGetSession_ExpiredJWTSkipsProvider() {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	_, err := client.GetSession(context.Background(), signToken(s, time.Now().Add(-time.Hour)))

	s.ErrorIs(err, ErrNoSession)
	s.False(called, "expired token must not reach the provider")
}

func (s *IdentityClientTestSuite) TestGetSession_EmptyToken() {
	client := NewClient("http://unused", "anon-key")
	_, err := client.GetSession(context.Background(), "")
	s.ErrorIs(err, ErrNoSession)
}

func (s *IdentityClientTestSuite) TestSignIn_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/auth/v1/token", r.URL.Path)
		s.Equal("password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("jo@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "issued-token",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
			"user": map[string]interface{}{
				"id":              "user-1",
				"email":           "jo@example.com",
				"created_at":      "2026-08-27T10:00:00Z",
				"last_sign_in_at": "2026-08-27T10:00:02Z",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	grant, err := client.SignIn(context.Background(), "jo@example.com", "hunter22")

	s.Require().NoError(err)
	s.Equal("issued-token", grant.AccessToken)
	s.Equal("issued-token", grant.Session.AccessToken)
	s.True(grant.Session.IsNewUser())
}

func (s *IdentityClientTestSuite) TestSignIn_InvalidCredentials() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	_, err := client.SignIn(context.Background(), "jo@example.com", "wrong")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Contains(err.Error(), "Invalid login credentials")
}

func (s *IdentityClientTestSuite) TestExchangeCode_Failure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"msg": "code expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	_, err := client.ExchangeCode(context.Background(), "stale-code")

	var perr *ProviderError
	s.Require().ErrorAs(err, &perr)
	s.Equal(http.StatusForbidden, perr.Status)
	s.Equal("code expired", perr.Message)
}

func (s *IdentityClientTestSuite) TestSignUpAndRecoverAndSignOut() {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	s.NoError(client.SignUp(context.Background(), "new@example.com", "hunter22"))
	s.NoError(client.RequestPasswordReset(context.Background(), "new@example.com", "https://app.example.com/auth/reset"))
	s.NoError(client.SignOut(context.Background(), "some-token"))

	s.Equal([]string{"/auth/v1/signup", "/auth/v1/recover", "/auth/v1/logout"}, paths)
}
