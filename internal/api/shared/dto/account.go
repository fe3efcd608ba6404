package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/identity"
	"github.com/indietrack/artist-dashboard/internal/storage"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// UserResponse represents an identity
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"email_confirmed"`
	ArtistName     string    `json:"artist_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionResponse represents an identity session. A session rebuilt from a
// presented access token has no refresh token or expiry.
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	TokenType    string       `json:"token_type"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
	User         UserResponse `json:"user"`
}

// RegisterResponse represents the outcome of a registration
type RegisterResponse struct {
	Success             bool             `json:"success"`
	User                UserResponse     `json:"user"`
	Session             *SessionResponse `json:"session"`
	ConfirmationPending bool             `json:"confirmation_pending"`
}

// LoginResponse carries the session opened by a login
type LoginResponse struct {
	Success bool             `json:"success"`
	Session *SessionResponse `json:"session"`
}

// CheckSessionResponse carries the live session of the request; session and user are null without one
type CheckSessionResponse struct {
	Session       *SessionResponse `json:"session"`
	User          *UserResponse    `json:"user"`
	Authenticated bool             `json:"authenticated"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewMessageResponse acknowledges a completed operation
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// SocialLinkResponse represents a profile link
type SocialLinkResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ProfileResponse represents an artist profile
type ProfileResponse struct {
	ID              uuid.UUID            `json:"id"`
	ArtistName      string               `json:"artist_name"`
	Bio             *string              `json:"bio"`
	Genre           *string              `json:"genre"`
	ProfileImageURL *string              `json:"profile_image_url"`
	SocialLinks     []SocialLinkResponse `json:"social_links"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// LicenseAgreementResponse represents the payout identity of an artist
type LicenseAgreementResponse struct {
	FullName       string    `json:"full_name"`
	Address        string    `json:"address"`
	PassportNumber string    `json:"passport_number"`
	BankDetails    *string   `json:"bank_details"`
	SignatureURL   *string   `json:"signature_url"`
	AgreedToTerms  bool      `json:"agreed_to_terms"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NotificationPreferencesResponse represents the email notification switches
type NotificationPreferencesResponse struct {
	Releases  bool `json:"releases"`
	Analytics bool `json:"analytics"`
	Payments  bool `json:"payments"`
	Marketing bool `json:"marketing"`
}

// UpdateNotificationsResponse acknowledges saved notification switches
type UpdateNotificationsResponse struct {
	Success bool `json:"success"`
	NotificationPreferencesResponse
}

// AssetResponse represents a stored upload
type AssetResponse struct {
	Kind        domain.AssetKind `json:"kind"`
	URL         string           `json:"url"`
	ContentType string           `json:"content_type"`
	Size        int64            `json:"size"`
}

// MapUserToDTO maps an identity user
func MapUserToDTO(u *identity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmed,
		ArtistName:     u.ArtistName(),
		CreatedAt:      u.CreatedAt,
	}
}

// MapSessionToDTO maps an identity session
func MapSessionToDTO(s *identity.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	resp := &SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		User:         *MapUserToDTO(&s.User),
	}
	if !s.ExpiresAt.IsZero() {
		expiresAt := s.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

// MapLoginToDTO wraps the session opened by a login
func MapLoginToDTO(s *identity.Session) *LoginResponse {
	return &LoginResponse{Success: true, Session: MapSessionToDTO(s)}
}

// MapCheckSessionToDTO describes the session of a presented access token; user is nil without a live session
func MapCheckSessionToDTO(accessToken string, user *identity.User) *CheckSessionResponse {
	if user == nil {
		return &CheckSessionResponse{}
	}
	session := MapSessionToDTO(&identity.Session{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        *user,
	})
	return &CheckSessionResponse{
		Session:       session,
		User:          &session.User,
		Authenticated: true,
	}
}

// MapRegisterResultToDTO maps a registration outcome
func MapRegisterResultToDTO(r *account.RegisterResult) *RegisterResponse {
	return &RegisterResponse{
		Success:             true,
		User:                *MapUserToDTO(&r.User),
		Session:             MapSessionToDTO(r.Session),
		ConfirmationPending: r.ConfirmationPending,
	}
}

// MapProfileToDTO maps a profile with its social links
func MapProfileToDTO(p *schema.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	links := make([]SocialLinkResponse, 0, len(p.SocialLinks))
	for _, l := range p.SocialLinks {
		links = append(links, SocialLinkResponse{Platform: l.Platform, URL: l.URL})
	}
	return &ProfileResponse{
		ID:              p.ID,
		ArtistName:      p.ArtistName,
		Bio:             p.Bio,
		Genre:           p.Genre,
		ProfileImageURL: p.ProfileImageURL,
		SocialLinks:     links,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// MapLicenseAgreementToDTO maps a license agreement
func MapLicenseAgreementToDTO(a *schema.LicenseAgreement) *LicenseAgreementResponse {
	if a == nil {
		return nil
	}
	return &LicenseAgreementResponse{
		FullName:       a.FullName,
		Address:        a.Address,
		PassportNumber: a.PassportNumber,
		BankDetails:    a.BankDetails,
		SignatureURL:   a.SignatureURL,
		AgreedToTerms:  a.AgreedToTerms,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// MapNotificationPreferencesToDTO maps the notification switches
func MapNotificationPreferencesToDTO(p *domain.NotificationPreferences) *NotificationPreferencesResponse {
	return &NotificationPreferencesResponse{
		Releases:  p.Releases,
		Analytics: p.Analytics,
		Payments:  p.Payments,
		Marketing: p.Marketing,
	}
}

// MapUpdatedNotificationsToDTO acknowledges the saved notification switches
func MapUpdatedNotificationsToDTO(p *domain.NotificationPreferences) *UpdateNotificationsResponse {
	return &UpdateNotificationsResponse{
		Success:                         true,
		NotificationPreferencesResponse: *MapNotificationPreferencesToDTO(p),
	}
}

// MapAssetToDTO maps a stored upload
func MapAssetToDTO(kind domain.AssetKind, a *storage.Asset) *AssetResponse {
	return &AssetResponse{
		Kind:        kind,
		URL:         a.URL,
		ContentType: a.ContentType,
		Size:        a.Size,
	}
}
