package identity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/identity"
)

const (
	testAnonKey    = "anon-key"
	testServiceKey = "service-key"
	testJWTSecret  = "super-secret-jwt-token-with-at-least-32-characters"
)

var testUserID = uuid.MustParse("7d0e4f0e-6a4b-4b1f-9a57-0f3c2f7b8a11")

func userJSON(confirmed bool) map[string]interface{} {
	u := map[string]interface{}{
		"id":            testUserID.String(),
		"email":         "luna@example.com",
		"user_metadata": map[string]interface{}{"artist_name": "Luna Waves"},
		"created_at":    "2024-01-02T03:04:05Z",
	}
	if confirmed {
		u["email_confirmed_at"] = "2024-01-02T03:05:00Z"
	}
	return u
}

func sessionJSON() map[string]interface{} {
	return map[string]interface{}{
		"access_token":  "access",
		"refresh_token": "refresh",
		"token_type":    "bearer",
		"expires_in":    3600,
		"expires_at":    1893456000,
		"user":          userJSON(true),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestProvider starts a fake GoTrue server routed through handler
func newTestProvider(t *testing.T, jwtSecret string, handler http.HandlerFunc) identity.Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := adapter.NewHTTPClientWithPolicy(2*time.Second, adapter.RetryPolicy{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  200 * time.Millisecond,
	})
	return identity.NewGoTrueClient(identity.Config{
		URL:            server.URL,
		AnonKey:        testAnonKey,
		ServiceRoleKey: testServiceKey,
		JWTSecret:      jwtSecret,
	}, httpClient, adapter.NewJSON(), adapter.NewClock())
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestGoTrue_SignUp(t *testing.T) {
	t.Run("confirmation pending", func(t *testing.T) {
		provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			assert.Equal(t, "https://app.example.com/login", r.URL.Query().Get("redirect_to"))
			assert.Equal(t, testAnonKey, r.Header.Get("apikey"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "luna@example.com", body["email"])
			assert.Equal(t, map[string]interface{}{"artist_name": "Luna Waves"}, body["data"])

			writeJSON(w, http.StatusOK, userJSON(false))
		})

		result, err := provider.SignUp(context.Background(), "luna@example.com", "secret123",
			map[string]interface{}{"artist_name": "Luna Waves"}, "https://app.example.com/login")
		require.NoError(t, err)
		assert.Equal(t, testUserID, result.User.ID)
		assert.Nil(t, result.Session)
		assert.True(t, result.ConfirmationPending())
		assert.Equal(t, "Luna Waves", result.User.ArtistName())
	})

	t.Run("auto confirmed", func(t *testing.T) {
		provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, sessionJSON())
		})

		result, err := provider.SignUp(context.Background(), "luna@example.com", "secret123", nil, "")
		require.NoError(t, err)
		require.NotNil(t, result.Session)
		assert.Equal(t, "access", result.Session.AccessToken)
		assert.False(t, result.ConfirmationPending())
	})

	t.Run("already registered", func(t *testing.T) {
		provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"code": 422, "error_code": "user_already_exists", "msg": "User already registered",
			})
		})

		_, err := provider.SignUp(context.Background(), "luna@example.com", "secret123", nil, "")
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestGoTrue_SignIn(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    map[string]interface{}
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   sessionJSON(),
		},
		{
			name:    "invalid credentials legacy payload",
			status:  http.StatusBadRequest,
			body:    map[string]interface{}{"error": "invalid_grant", "error_description": "Invalid login credentials"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "invalid credentials",
			status:  http.StatusBadRequest,
			body:    map[string]interface{}{"error_code": "invalid_credentials", "msg": "Invalid login credentials"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "email not confirmed",
			status:  http.StatusBadRequest,
			body:    map[string]interface{}{"error": "invalid_grant", "error_description": "Email not confirmed"},
			wantErr: domain.ErrEmailNotConfirmed,
		},
		{
			name:    "provider down",
			status:  http.StatusServiceUnavailable,
			body:    map[string]interface{}{"message": "unavailable"},
			wantErr: domain.ErrIdentityProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/token", r.URL.Path)
				assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
				writeJSON(w, tt.status, tt.body)
			})

			session, err := provider.SignIn(context.Background(), "luna@example.com", "secret123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", session.AccessToken)
			assert.Equal(t, time.Unix(1893456000, 0), session.ExpiresAt)
			assert.True(t, session.User.EmailConfirmed)
		})
	}
}

func TestGoTrue_VerifySession(t *testing.T) {
	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":           testUserID.String(),
			"email":         "luna@example.com",
			"role":          "authenticated",
			"exp":           time.Now().Add(time.Hour).Unix(),
			"user_metadata": map[string]interface{}{"artist_name": "Luna Waves"},
		}
	}

	t.Run("local verification", func(t *testing.T) {
		provider := newTestProvider(t, testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected remote call to %s", r.URL.Path)
		})

		user, err := provider.VerifySession(context.Background(), signToken(t, testJWTSecret, validClaims()))
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, "Luna Waves", user.ArtistName())
	})

	t.Run("expired token falls back and is rejected remotely", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()

		provider := newTestProvider(t, testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error_code": "bad_jwt", "msg": "token is expired"})
		})

		_, err := provider.VerifySession(context.Background(), signToken(t, testJWTSecret, claims))
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("wrong secret falls back to remote", func(t *testing.T) {
		provider := newTestProvider(t, testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			writeJSON(w, http.StatusOK, userJSON(true))
		})

		user, err := provider.VerifySession(context.Background(), signToken(t, "another-secret", validClaims()))
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("service role token is not a user session", func(t *testing.T) {
		claims := validClaims()
		claims["role"] = "service_role"

		provider := newTestProvider(t, testJWTSecret, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]interface{}{"msg": "not a user"})
		})

		_, err := provider.VerifySession(context.Background(), signToken(t, testJWTSecret, claims))
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected remote call")
		})
		_, err := provider.VerifySession(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestGoTrue_UpdateUser(t *testing.T) {
	provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"data":{"notification_preferences":{"releases":true}}}`, string(raw))
		writeJSON(w, http.StatusOK, userJSON(true))
	})

	user, err := provider.UpdateUser(context.Background(), "user-token", identity.UserAttributes{
		Data: map[string]interface{}{"notification_preferences": map[string]bool{"releases": true}},
	})
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
}

func TestGoTrue_AdminCalls(t *testing.T) {
	provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testServiceKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer "+testServiceKey, r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/auth/v1/admin/users":
			other := userJSON(true)
			other["id"] = uuid.New().String()
			other["email"] = "luna@example.com.au"
			writeJSON(w, http.StatusOK, map[string]interface{}{"users": []interface{}{other, userJSON(true)}})
		case r.Method == http.MethodDelete && r.URL.Path == "/auth/v1/admin/users/"+testUserID.String():
			writeJSON(w, http.StatusOK, map[string]interface{}{})
		default:
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"msg": "User not found"})
		}
	})

	user, err := provider.FindUserByEmail(context.Background(), "LUNA@example.com")
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)

	require.NoError(t, provider.DeleteUser(context.Background(), testUserID))
	assert.ErrorIs(t, provider.DeleteUser(context.Background(), uuid.New()), domain.ErrUserNotFound)
}

func TestGoTrue_SignOutIgnoresRevokedSession(t *testing.T) {
	provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"msg": "session not found"})
	})

	assert.NoError(t, provider.SignOut(context.Background(), "gone"))
}

func TestGoTrue_VerifyEmail(t *testing.T) {
	provider := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["token_hash"] != "good" {
			writeJSON(w, http.StatusForbidden, map[string]interface{}{"msg": "Token has expired or is invalid"})
			return
		}
		assert.Equal(t, "email", body["type"])
		writeJSON(w, http.StatusOK, sessionJSON())
	})

	session, err := provider.VerifyEmail(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, testUserID, session.User.ID)

	_, err = provider.VerifyEmail(context.Background(), "bad")
	assert.True(t, domain.IsValidationError(err))
}
