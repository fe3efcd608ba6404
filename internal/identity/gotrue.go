package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

// Config holds the GoTrue connection settings
type Config struct {
	// URL is the project base URL; the client appends /auth/v1
	URL string
	// AnonKey is sent as the apikey header on public endpoints
	AnonKey string
	// ServiceRoleKey authorizes admin endpoints (user lookup and deletion)
	ServiceRoleKey string
	// JWTSecret enables local verification of HS256 access tokens
	JWTSecret string
}

type goTrueClient struct {
	baseURL  string
	cfg      Config
	http     adapter.HTTPClient
	json     adapter.JSON
	clock    adapter.Clock
	verifier *tokenVerifier
}

// NewGoTrueClient creates an identity provider backed by a GoTrue compatible REST API
func NewGoTrueClient(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, clock adapter.Clock) Provider {
	c := &goTrueClient{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		cfg:     cfg,
		http:    httpClient,
		json:    jsonAdapter,
		clock:   clock,
	}
	if cfg.JWTSecret != "" {
		c.verifier = newTokenVerifier(cfg.JWTSecret, clock)
	}
	return c
}

// =============================================================================
// Wire types
// =============================================================================

type goTrueUser struct {
	ID               string                 `json:"id"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at"`
	ConfirmedAt      *time.Time             `json:"confirmed_at"`
	UserMetadata     map[string]interface{} `json:"user_metadata"`
	CreatedAt        time.Time              `json:"created_at"`
}

type goTrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	User         *goTrueUser `json:"user"`
}

// goTrueError covers both the OAuth style and the newer error payloads
type goTrueError struct {
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e goTrueError) code() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	return e.Error
}

func (e goTrueError) text() string {
	for _, s := range []string{e.Msg, e.ErrorDescription, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

func (u *goTrueUser) toUser() (*User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", domain.ErrIdentityProvider, u.ID)
	}
	return &User{
		ID:             id,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmedAt != nil || u.ConfirmedAt != nil,
		UserMetadata:   u.UserMetadata,
		CreatedAt:      u.CreatedAt,
	}, nil
}

func (c *goTrueClient) toSession(s *goTrueSession) (*Session, error) {
	if s.User == nil {
		return nil, fmt.Errorf("%w: session without user", domain.ErrIdentityProvider)
	}
	user, err := s.User.toUser()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Unix(s.ExpiresAt, 0)
	if s.ExpiresAt == 0 {
		expiresAt = c.clock.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}

	return &Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresAt:    expiresAt,
		User:         *user,
	}, nil
}

// =============================================================================
// Transport
// =============================================================================

type call struct {
	method string
	path   string
	query  url.Values
	bearer string
	apiKey string
	body   interface{}
}

// do performs a call and decodes a 2xx body into out.
// Non-2xx responses are returned as *apiError.
func (c *goTrueClient) do(ctx context.Context, cl call, out interface{}) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	apiKey := cl.apiKey
	if apiKey == "" {
		apiKey = c.cfg.AnonKey
	}
	header.Set("apikey", apiKey)
	bearer := cl.bearer
	if bearer == "" {
		bearer = apiKey
	}
	header.Set("Authorization", "Bearer "+bearer)

	var body []byte
	if cl.body != nil {
		var err error
		body, err = c.json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(ctx, adapter.Request{
		Method: cl.method,
		URL:    target,
		Header: header,
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrIdentityProvider, cl.method, cl.path, err)
	}

	if !resp.OK() {
		var payload goTrueError
		_ = c.json.Unmarshal(resp.Body, &payload)
		return &apiError{status: resp.StatusCode, code: payload.code(), message: payload.text()}
	}

	if out != nil {
		if err := c.json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", domain.ErrIdentityProvider, err)
		}
	}
	return nil
}

// apiError is a non-2xx response from the identity provider
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string {
	if e.code != "" {
		return fmt.Sprintf("identity provider returned %d (%s): %s", e.status, e.code, e.message)
	}
	return fmt.Sprintf("identity provider returned %d: %s", e.status, e.message)
}

func (e *apiError) Unwrap() error {
	return domain.ErrIdentityProvider
}

func (e *apiError) emailNotConfirmed() bool {
	return e.code == "email_not_confirmed" || strings.EqualFold(e.message, "Email not confirmed")
}

func (e *apiError) invalidCredentials() bool {
	return e.code == "invalid_grant" || e.code == "invalid_credentials"
}

func (e *apiError) userExists() bool {
	return e.code == "user_already_exists" || e.code == "email_exists" ||
		strings.Contains(strings.ToLower(e.message), "already registered")
}

// =============================================================================
// Provider
// =============================================================================

// SignUp registers a new identity. Depending on the provider settings the
// response is either a session (auto-confirm) or the bare user.
func (c *goTrueClient) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}, redirectTo string) (*SignUpResult, error) {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": []string{redirectTo}}
	}

	var raw struct {
		goTrueSession
		goTrueUser
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/signup",
		query:  query,
		body: map[string]interface{}{
			"email":    email,
			"password": password,
			"data":     metadata,
		},
	}, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			if ae.userExists() {
				return nil, domain.NewValidationError("email", "is already registered")
			}
			if ae.status == http.StatusBadRequest || ae.status == http.StatusUnprocessableEntity {
				return nil, domain.NewValidationError("password", ae.message)
			}
		}
		return nil, err
	}

	if raw.AccessToken != "" {
		session, err := c.toSession(&raw.goTrueSession)
		if err != nil {
			return nil, err
		}
		return &SignUpResult{User: session.User, Session: session}, nil
	}

	user, err := raw.goTrueUser.toUser()
	if err != nil {
		return nil, err
	}
	return &SignUpResult{User: *user}, nil
}

// SignIn exchanges an email and password for a session
func (c *goTrueClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var raw goTrueSession
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": []string{"password"}},
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			switch {
			case ae.emailNotConfirmed():
				return nil, domain.ErrEmailNotConfirmed
			case ae.invalidCredentials(), ae.status == http.StatusBadRequest:
				return nil, domain.ErrInvalidCredentials
			}
		}
		return nil, err
	}
	return c.toSession(&raw)
}

// VerifySession verifies the token locally when a JWT secret is configured and
// falls back to asking the identity provider otherwise
func (c *goTrueClient) VerifySession(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, domain.ErrNotAuthorized
	}

	if c.verifier != nil {
		user, err := c.verifier.verify(accessToken)
		if err == nil {
			return user, nil
		}
		logger.DebugCtx(ctx, "Local token verification failed, asking identity provider", zap.Error(err))
	}

	var raw goTrueUser
	err := c.do(ctx, call{method: http.MethodGet, path: "/user", bearer: accessToken}, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.status < http.StatusInternalServerError {
			return nil, domain.ErrNotAuthorized
		}
		return nil, err
	}
	return raw.toUser()
}

// UpdateUser changes the password or metadata of the session's user
func (c *goTrueClient) UpdateUser(ctx context.Context, accessToken string, attrs UserAttributes) (*User, error) {
	body := map[string]interface{}{}
	if attrs.Password != nil {
		body["password"] = *attrs.Password
	}
	if attrs.Data != nil {
		body["data"] = attrs.Data
	}

	var raw goTrueUser
	err := c.do(ctx, call{method: http.MethodPut, path: "/user", bearer: accessToken, body: body}, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			if ae.status == http.StatusUnauthorized || ae.status == http.StatusForbidden {
				return nil, domain.ErrNotAuthorized
			}
			if ae.status == http.StatusBadRequest || ae.status == http.StatusUnprocessableEntity {
				field := "data"
				if attrs.Password != nil {
					field = "password"
				}
				return nil, domain.NewValidationError(field, ae.message)
			}
		}
		return nil, err
	}
	return raw.toUser()
}

// SignOut revokes the session
func (c *goTrueClient) SignOut(ctx context.Context, accessToken string) error {
	err := c.do(ctx, call{method: http.MethodPost, path: "/logout", bearer: accessToken}, nil)
	if err != nil {
		var ae *apiError
		// An already revoked or deleted session is as good as signed out
		if errors.As(err, &ae) && ae.status < http.StatusInternalServerError {
			return nil
		}
		return err
	}
	return nil
}

// RequestPasswordReset sends a password recovery email
func (c *goTrueClient) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": []string{redirectTo}}
	}
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/recover",
		query:  query,
		body:   map[string]string{"email": email},
	}, nil)
}

// VerifyEmail confirms an email address with the token hash from the confirmation email
func (c *goTrueClient) VerifyEmail(ctx context.Context, tokenHash string) (*Session, error) {
	var raw goTrueSession
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/verify",
		body: map[string]string{
			"type":       "email",
			"token_hash": tokenHash,
		},
	}, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.status < http.StatusInternalServerError {
			return nil, domain.NewValidationError("token", "is invalid or has expired")
		}
		return nil, err
	}
	return c.toSession(&raw)
}

// FindUserByEmail looks up an identity through the admin API
func (c *goTrueClient) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if c.cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf("%w: service role key not configured", domain.ErrIdentityProvider)
	}

	var raw struct {
		Users []goTrueUser `json:"users"`
	}
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/admin/users",
		query:  url.Values{"filter": []string{email}, "per_page": []string{"50"}},
		apiKey: c.cfg.ServiceRoleKey,
	}, &raw)
	if err != nil {
		return nil, err
	}

	for i := range raw.Users {
		if strings.EqualFold(raw.Users[i].Email, email) {
			return raw.Users[i].toUser()
		}
	}
	return nil, domain.ErrUserNotFound
}

// DeleteUser removes the identity through the admin API
func (c *goTrueClient) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if c.cfg.ServiceRoleKey == "" {
		return fmt.Errorf("%w: service role key not configured", domain.ErrIdentityProvider)
	}

	err := c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/admin/users/" + userID.String(),
		apiKey: c.cfg.ServiceRoleKey,
	}, nil)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.status == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
