package account

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// MaxBioLength is the maximum length of an artist biography in characters
const MaxBioLength = 2000

// SocialLink is an external profile link
type SocialLink struct {
	Platform string
	URL      string
}

// ProfileInput holds the profile fields to change; nil fields are left untouched.
// A nil SocialLinks keeps the existing links, an empty slice removes them.
type ProfileInput struct {
	ArtistName      *string
	Bio             *string
	Genre           *string
	ProfileImageURL *string
	SocialLinks     []SocialLink
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*schema.Profile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get profile: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*schema.Profile, error) {
	profile, err := s.applyProfile(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	s.recordActivity(ctx, userID, domain.ActivityProfileUpdated, "Profile updated")
	return profile, nil
}

func (s *service) SetupProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*schema.Profile, error) {
	if input.ArtistName == nil {
		return nil, domain.NewValidationError("artist_name", "is required")
	}
	name, err := validateArtistName(*input.ArtistName)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.EnsureProfile(ctx, &schema.Profile{ID: userID, ArtistName: name}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to provision profile: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}

	profile, err := s.applyProfile(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	s.recordActivity(ctx, userID, domain.ActivityProfileCreated, "Profile setup completed")
	return profile, nil
}

// applyProfile validates and writes the profile fields and social links, then
// replaces a superseded avatar in object storage
func (s *service) applyProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*schema.Profile, error) {
	var update store.UpdateProfileInput

	if input.ArtistName != nil {
		name, err := validateArtistName(*input.ArtistName)
		if err != nil {
			return nil, err
		}
		update.ArtistName = &name
	}
	if input.Bio != nil {
		if utf8.RuneCountInString(*input.Bio) > MaxBioLength {
			return nil, domain.NewValidationError("bio", fmt.Sprintf("must be at most %d characters", MaxBioLength))
		}
		bio := strings.TrimSpace(*input.Bio)
		update.Bio = &bio
	}
	if input.Genre != nil {
		genre := strings.TrimSpace(*input.Genre)
		update.Genre = &genre
	}
	if input.ProfileImageURL != nil {
		image := strings.TrimSpace(*input.ProfileImageURL)
		if image != "" && !validURL(image) {
			return nil, domain.NewValidationError("profile_image_url", "must be an http(s) URL")
		}
		update.ProfileImageURL = &image
	}

	var links []store.SocialLinkInput
	if input.SocialLinks != nil {
		var err error
		if links, err = validateSocialLinks(input.SocialLinks); err != nil {
			return nil, err
		}
	}

	previous, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.UpdateProfile(ctx, userID, update); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to update profile: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}
	if input.SocialLinks != nil {
		if err := s.store.ReplaceSocialLinks(ctx, userID, links); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to replace social links: %w", err), zap.String("userID", userID.String()))
			return nil, domain.ErrPersistence
		}
	}

	if update.ProfileImageURL != nil && previous.ProfileImageURL != nil &&
		*previous.ProfileImageURL != "" && *previous.ProfileImageURL != *update.ProfileImageURL {
		if err := s.storage.Remove(ctx, *previous.ProfileImageURL); err != nil {
			logger.WarnCtx(ctx, "Failed to remove previous avatar", zap.Error(err), zap.String("userID", userID.String()))
		}
	}

	return s.GetProfile(ctx, userID)
}

func validateArtistName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < MinArtistNameLength {
		return "", domain.NewValidationError("artist_name", fmt.Sprintf("must be at least %d characters", MinArtistNameLength))
	}
	return name, nil
}

// validateSocialLinks drops links with an empty URL, which is how a cleared form field arrives
func validateSocialLinks(links []SocialLink) ([]store.SocialLinkInput, error) {
	out := make([]store.SocialLinkInput, 0, len(links))
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		platform := strings.ToLower(strings.TrimSpace(l.Platform))
		link := strings.TrimSpace(l.URL)
		if link == "" {
			continue
		}
		if platform == "" {
			return nil, domain.NewValidationError("social_links", "platform is required")
		}
		if seen[platform] {
			return nil, domain.NewValidationError("social_links", fmt.Sprintf("duplicate platform %q", platform))
		}
		if !validURL(link) {
			return nil, domain.NewValidationError("social_links", fmt.Sprintf("invalid URL for %s", platform))
		}
		seen[platform] = true
		out = append(out, store.SocialLinkInput{Platform: platform, URL: link})
	}
	return out, nil
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
