package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an identity as seen by the identity provider
type User struct {
	ID             uuid.UUID              `json:"id"`
	Email          string                 `json:"email"`
	EmailConfirmed bool                   `json:"email_confirmed"`
	UserMetadata   map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ArtistName returns the artist name captured at registration, if any
func (u *User) ArtistName() string {
	if u == nil || u.UserMetadata == nil {
		return ""
	}
	name, _ := u.UserMetadata[MetadataArtistName].(string)
	return name
}

// Session is an authenticated identity session
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// SignUpResult is the outcome of a registration. Session is nil while the
// email address still has to be confirmed.
type SignUpResult struct {
	User    User
	Session *Session
}

// ConfirmationPending reports whether the new user must confirm their email before logging in
func (r *SignUpResult) ConfirmationPending() bool {
	return r.Session == nil && !r.User.EmailConfirmed
}

// UserAttributes holds the identity fields to change; nil fields are left untouched
type UserAttributes struct {
	Password *string
	Data     map[string]interface{}
}

const (
	// MetadataArtistName is the user metadata key holding the artist name
	MetadataArtistName = "artist_name"
	// MetadataNotificationPreferences is the user metadata key holding the notification switches
	MetadataNotificationPreferences = "notification_preferences"
)

// Provider is the identity provider used for authentication and session management.
// Errors are reported with the domain sentinels: ErrInvalidCredentials,
// ErrEmailNotConfirmed, ErrNotAuthorized, ErrUserNotFound and ErrIdentityProvider.
//
//go:generate mockgen -source=identity.go -destination=../mocks/identity.go -package=mocks -mock_names=Provider=MockIdentityProvider
type Provider interface {
	// SignUp registers a new identity with the given metadata attributes
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}, redirectTo string) (*SignUpResult, error)
	// SignIn exchanges an email and password for a session
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// VerifySession resolves the user of an access token
	VerifySession(ctx context.Context, accessToken string) (*User, error)
	// UpdateUser changes the password or metadata of the session's user
	UpdateUser(ctx context.Context, accessToken string, attrs UserAttributes) (*User, error)
	// SignOut revokes the session
	SignOut(ctx context.Context, accessToken string) error
	// RequestPasswordReset sends a password recovery email
	RequestPasswordReset(ctx context.Context, email, redirectTo string) error
	// VerifyEmail confirms an email address with the token from the confirmation email
	VerifyEmail(ctx context.Context, tokenHash string) (*Session, error)
	// FindUserByEmail looks up an identity by email; ErrUserNotFound when absent
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	// DeleteUser removes the identity; requires the service role key
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
