package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/account"
	apierrors "github.com/indietrack/artist-dashboard/internal/api/shared/errors"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/identity"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY contextKey = "auth_type"
	CALLER_KEY    contextKey = "caller"
	USER_ID_KEY   contextKey = "user_id"
)

const (
	AuthTypeSession = "session"
	AuthTypeAPIKey  = "apikey"
)

// SessionVerifier resolves the user behind an access token
type SessionVerifier interface {
	VerifySession(ctx context.Context, accessToken string) (*identity.User, error)
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// APIKeys authorize the internal moderation and distribution routes
	APIKeys []string
}

// BearerToken extracts the access token of an "Authorization: Bearer <token>" header
func BearerToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionAuth returns a gin middleware requiring a valid identity session.
// The caller and its user id are stored in the gin context.
func SessionAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, errors.New("missing bearer token"))
			return
		}

		user, err := verifier.VerifySession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrNotAuthorized) {
				abortUnauthorized(c, err)
				return
			}
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
			status, apiErr := apierrors.FromError(err)
			c.AbortWithStatusJSON(status, apierrors.Response{Error: apiErr})
			return
		}

		c.Set(AUTH_TYPE_KEY, AuthTypeSession)
		c.Set(CALLER_KEY, account.Caller{AccessToken: token, User: *user})
		c.Set(USER_ID_KEY, user.ID)

		logger.DebugCtx(c.Request.Context(), "Session authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("userID", user.ID.String()),
		)

		c.Next()
	}
}

// APIKeyAuth returns a gin middleware requiring an "Authorization: ApiKey <key>" header
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, key, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "apikey") {
			abortUnauthorized(c, errors.New("missing API key"))
			return
		}
		if err := validateAPIKey(strings.TrimSpace(key), cfg.APIKeys); err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(AUTH_TYPE_KEY, AuthTypeAPIKey)
		c.Next()
	}
}

// GetCaller returns the authenticated caller set by SessionAuth
func GetCaller(c *gin.Context) (account.Caller, bool) {
	v, ok := c.Get(CALLER_KEY)
	if !ok {
		return account.Caller{}, false
	}
	caller, ok := v.(account.Caller)
	return caller, ok
}

// GetUserID returns the authenticated user id set by SessionAuth
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(USER_ID_KEY)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func abortUnauthorized(c *gin.Context, reason error) {
	logger.WarnCtx(c.Request.Context(), "Authentication failed",
		zap.Error(reason),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.Response{
		Error: apierrors.NewUnauthorizedError("Authentication required"),
	})
}

// validateAPIKey compares in constant time against every configured key
func validateAPIKey(apiKey string, validKeys []string) error {
	if apiKey == "" {
		return errors.New("empty API key")
	}
	configured := false
	for _, k := range validKeys {
		if k == "" {
			continue
		}
		configured = true
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(k)) == 1 {
			return nil
		}
	}
	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
