package dto

import (
	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/release"
)

// RegisterRequest represents the request body for POST /auth/register
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToInput converts the request to the account service input
func (r *RegisterRequest) ToInput() account.RegisterInput {
	return account.RegisterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// LoginRequest represents the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest represents the request body for POST /auth/update-password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// DeleteAccountRequest represents the request body for POST /auth/delete-account
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents the request body for POST /auth/reset-password
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateNotificationsRequest represents the request body for POST /auth/update-notifications
type UpdateNotificationsRequest struct {
	Releases  bool `json:"releases"`
	Analytics bool `json:"analytics"`
	Payments  bool `json:"payments"`
	Marketing bool `json:"marketing"`
}

// ToPreferences converts the request to the notification switches
func (r *UpdateNotificationsRequest) ToPreferences() domain.NotificationPreferences {
	return domain.NotificationPreferences{
		Releases:  r.Releases,
		Analytics: r.Analytics,
		Payments:  r.Payments,
		Marketing: r.Marketing,
	}
}

// SocialLinkRequest is a single profile link
type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url"`
}

// ProfileRequest represents the request body for PUT /profile and POST /profile/setup.
// Omitted fields are left untouched; an omitted social_links keeps the existing links.
type ProfileRequest struct {
	ArtistName      *string             `json:"artist_name"`
	Bio             *string             `json:"bio" binding:"omitempty,max=2000"`
	Genre           *string             `json:"genre"`
	ProfileImageURL *string             `json:"profile_image_url"`
	SocialLinks     []SocialLinkRequest `json:"social_links" binding:"omitempty,max=20,dive"`
}

// ToInput converts the request to the account service input
func (r *ProfileRequest) ToInput() account.ProfileInput {
	input := account.ProfileInput{
		ArtistName:      r.ArtistName,
		Bio:             r.Bio,
		Genre:           r.Genre,
		ProfileImageURL: r.ProfileImageURL,
	}
	if r.SocialLinks != nil {
		input.SocialLinks = make([]account.SocialLink, 0, len(r.SocialLinks))
		for _, l := range r.SocialLinks {
			input.SocialLinks = append(input.SocialLinks, account.SocialLink{Platform: l.Platform, URL: l.URL})
		}
	}
	return input
}

// LicenseAgreementRequest represents the request body for PUT /license-agreement
type LicenseAgreementRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	PassportNumber string  `json:"passport_number" binding:"required"`
	BankDetails    *string `json:"bank_details"`
	SignatureURL   *string `json:"signature_url"`
	AgreedToTerms  bool    `json:"agreed_to_terms"`
}

// ToInput converts the request to the account service input
func (r *LicenseAgreementRequest) ToInput() account.LicenseAgreementInput {
	return account.LicenseAgreementInput{
		FullName:       r.FullName,
		Address:        r.Address,
		PassportNumber: r.PassportNumber,
		BankDetails:    r.BankDetails,
		SignatureURL:   r.SignatureURL,
		AgreedToTerms:  r.AgreedToTerms,
	}
}

// CreateReleaseRequest represents the request body for POST /releases
type CreateReleaseRequest struct {
	Title       string               `json:"title" binding:"required"`
	ReleaseDate string               `json:"release_date" binding:"required,datetime=2006-01-02"`
	Status      domain.ReleaseStatus `json:"status"`
	Genre       *string              `json:"genre"`
	Description *string              `json:"description" binding:"omitempty,max=1000"`
	ReleaseType *domain.ReleaseType  `json:"release_type"`
	CoverArtURL *string              `json:"cover_art_url"`
}

// ToInput converts the request to the release service input
func (r *CreateReleaseRequest) ToInput(ownerID uuid.UUID) release.CreateReleaseInput {
	return release.CreateReleaseInput{
		OwnerID:     ownerID,
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate,
		Status:      r.Status,
		Genre:       r.Genre,
		Description: r.Description,
		ReleaseType: r.ReleaseType,
		CoverArtURL: r.CoverArtURL,
	}
}

// UpdateReleaseRequest represents the request body for PATCH /releases/:id
type UpdateReleaseRequest struct {
	Title       *string               `json:"title"`
	ReleaseDate *string               `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *domain.ReleaseStatus `json:"status"`
	Genre       *string               `json:"genre"`
	Description *string               `json:"description" binding:"omitempty,max=1000"`
	ReleaseType *domain.ReleaseType   `json:"release_type"`
	CoverArtURL *string               `json:"cover_art_url"`
}

// ToInput converts the request to the release service input
func (r *UpdateReleaseRequest) ToInput(ownerID, releaseID uuid.UUID) release.UpdateReleaseInput {
	return release.UpdateReleaseInput{
		ReleaseID:   releaseID,
		OwnerID:     ownerID,
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate,
		Status:      r.Status,
		Genre:       r.Genre,
		Description: r.Description,
		ReleaseType: r.ReleaseType,
		CoverArtURL: r.CoverArtURL,
	}
}

// CreateTrackRequest represents the request body for POST /releases/:id/tracks
type CreateTrackRequest struct {
	Title       string  `json:"title" binding:"required"`
	TrackNumber int     `json:"track_number" binding:"required,min=1"`
	Duration    *int    `json:"duration" binding:"omitempty,min=0"`
	AudioURL    *string `json:"audio_url"`
	ISRC        *string `json:"isrc"`
}

// ToInput converts the request to the release service input
func (r *CreateTrackRequest) ToInput(ownerID, releaseID uuid.UUID) release.CreateTrackInput {
	return release.CreateTrackInput{
		ReleaseID:   releaseID,
		OwnerID:     ownerID,
		Title:       r.Title,
		TrackNumber: r.TrackNumber,
		Duration:    r.Duration,
		AudioURL:    r.AudioURL,
		ISRC:        r.ISRC,
	}
}

// ModerationRequest represents the request body for POST /internal/v1/releases/:id/moderation
type ModerationRequest struct {
	Decision domain.ModerationStatus `json:"decision" binding:"required"`
}

// DistributionRequest represents the request body for POST /internal/v1/releases/:id/distribution
type DistributionRequest struct {
	Status domain.DistributionStatus `json:"status" binding:"required"`
	UPC    *string                   `json:"upc"`
}

// StreamReportRequest is one daily stream count in an ingest batch
type StreamReportRequest struct {
	TrackID  *uuid.UUID `json:"track_id"`
	Platform string     `json:"platform" binding:"required"`
	Date     string     `json:"date" binding:"required"`
	Streams  int64      `json:"streams" binding:"gte=0"`
}

// IngestStreamsRequest represents the request body for POST /internal/v1/releases/:id/streams
type IngestStreamsRequest struct {
	Reports []StreamReportRequest `json:"reports" binding:"required,min=1,max=1000,dive"`
}

// ToReports converts the request to analytics stream reports
func (r *IngestStreamsRequest) ToReports() []analytics.StreamReport {
	reports := make([]analytics.StreamReport, len(r.Reports))
	for i, rep := range r.Reports {
		reports[i] = analytics.StreamReport{
			TrackID:  rep.TrackID,
			Platform: rep.Platform,
			Date:     rep.Date,
			Streams:  rep.Streams,
		}
	}
	return reports
}

// IngestStreamsResponse reports how many rows an ingest call stored
type IngestStreamsResponse struct {
	Stored int `json:"stored"`
}
