package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"receiptai/internal/models"
)

var (
	// ErrNoSession means the token resolved to no usable session. A
	// transport failure during lookup maps here too: callers treat a
	// single failed lookup as "not signed in" and send the user to the
	// auth page rather than retrying.
	ErrNoSession = errors.New("no active session")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProviderError is a structured failure returned by the identity
// provider. Its message is safe to show on the auth form verbatim.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider returned %d: %s", e.Status, e.Message)
}

// TokenGrant is an issued session: the tokens plus the resolved user.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int
	Session      *models.Session
}

// Client talks to the external identity provider. It issues no retries
// and keeps no state; every call is a single request-response.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL, anonKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// providerUser is the provider's user representation. Metadata blocks
// are free-form; only the tier key is read.
type providerUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	CreatedAt    time.Time              `json:"created_at"`
	LastSignInAt time.Time              `json:"last_sign_in_at"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
}

type grantResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         providerUser `json:"user"`
}

type providerErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

// GetSession resolves an access token to the current session. Clearly
// expired JWTs are rejected without a provider round trip; everything
// else is the provider's call.
func (c *Client) GetSession(ctx context.Context, accessToken string) (*models.Session, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}
	if tokenExpired(accessToken) {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("session lookup failed, treating as no session", "error", err)
		return nil, ErrNoSession
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoSession
	}

	var user providerUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, ErrNoSession
	}

	session := user.toSession()
	session.AccessToken = accessToken
	return session, nil
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*TokenGrant, error) {
	grant, err := c.requestGrant(ctx, "/auth/v1/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) && (perr.Status == http.StatusBadRequest || perr.Status == http.StatusUnauthorized) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, perr.Message)
		}
		return nil, err
	}
	return grant, nil
}

// SignUp registers a new account. The provider sends the confirmation
// email; no session is issued here.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	return c.postJSON(ctx, "/auth/v1/signup", map[string]string{
		"email":    email,
		"password": password,
	}, "")
}

// RequestPasswordReset asks the provider to email a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	body := map[string]string{"email": email}
	if redirectTo != "" {
		body["redirect_to"] = redirectTo
	}
	return c.postJSON(ctx, "/auth/v1/recover", body, "")
}

// ExchangeCode trades an OAuth redirect authorization code for a session.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenGrant, error) {
	return c.requestGrant(ctx, "/auth/v1/token?grant_type=authorization_code", map[string]string{
		"code": code,
	})
}

// SignOut invalidates the session at the provider.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.postJSON(ctx, "/auth/v1/logout", nil, accessToken)
}

func (c *Client) requestGrant(ctx context.Context, path string, body interface{}) (*TokenGrant, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readProviderError(resp)
	}

	var grant grantResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return nil, fmt.Errorf("decode grant response: %w", err)
	}
	if grant.AccessToken == "" {
		return nil, &ProviderError{Status: resp.StatusCode, Message: "grant response carried no access token"}
	}

	session := grant.User.toSession()
	session.AccessToken = grant.AccessToken

	return &TokenGrant{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		TokenType:    grant.TokenType,
		ExpiresIn:    grant.ExpiresIn,
		Session:      session,
	}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, accessToken string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return readProviderError(resp)
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

func readProviderError(resp *http.Response) error {
	var body providerErrorBody
	message := http.StatusText(resp.StatusCode)

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		switch {
		case body.ErrorDescription != "":
			message = body.ErrorDescription
		case body.Msg != "":
			message = body.Msg
		case body.Message != "":
			message = body.Message
		case body.Error != "":
			message = body.Error
		}
	}

	return &ProviderError{Status: resp.StatusCode, Message: message}
}

func (u *providerUser) toSession() *models.Session {
	return &models.Session{
		UserID:       u.ID,
		Email:        u.Email,
		Tier:         u.tier(),
		CreatedAt:    u.CreatedAt,
		LastSignInAt: u.LastSignInAt,
	}
}

// tier reads the subscription tier from user metadata, falling back to
// app metadata, defaulting to free.
func (u *providerUser) tier() models.Tier {
	if raw, ok := u.UserMetadata["tier"].(string); ok && raw != "" {
		return models.NormalizeTier(raw)
	}
	if raw, ok := u.AppMetadata["tier"].(string); ok && raw != "" {
		return models.NormalizeTier(raw)
	}
	return models.TierFree
}
