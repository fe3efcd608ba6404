package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/identity"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/storage"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

const (
	// MinPasswordLength matches the identity provider's password policy
	MinPasswordLength = 6
	// MinArtistNameLength is the minimum trimmed length of an artist name
	MinArtistNameLength = 2
)

// Config holds the links embedded in identity emails
type Config struct {
	// EmailRedirectURL is where the confirmation email sends the user
	EmailRedirectURL string
	// PasswordResetRedirectURL is where the recovery email sends the user
	PasswordResetRedirectURL string
}

// Caller is the authenticated user of a request together with the token that proved it
type Caller struct {
	AccessToken string
	User        identity.User
}

// RegisterInput holds the registration form
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// RegisterResult is the outcome of a registration
type RegisterResult struct {
	User    identity.User
	Session *identity.Session
	// ConfirmationPending is set when the user must confirm their email before logging in
	ConfirmationPending bool
}

// Service manages artist accounts: authentication, profile, settings and uploads
//
//go:generate mockgen -source=account.go -destination=../mocks/account.go -package=mocks -mock_names=Service=MockAccountService
type Service interface {
	// Register creates the identity and provisions the artist profile
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	// Login exchanges credentials for a session and provisions the profile on first login
	Login(ctx context.Context, email, password string) (*identity.Session, error)
	// CheckSession resolves the user of an access token; nil when the token is missing or expired
	CheckSession(ctx context.Context, accessToken string) (*identity.User, error)
	// Logout revokes the session
	Logout(ctx context.Context, accessToken string) error
	// UpdatePassword changes the password after re-verifying the current one
	UpdatePassword(ctx context.Context, caller Caller, currentPassword, newPassword string) error
	// DeleteAccount removes every owned row, stored assets and the identity
	DeleteAccount(ctx context.Context, caller Caller, password string) error
	// RequestPasswordReset sends a recovery email
	RequestPasswordReset(ctx context.Context, email string) error
	// VerifyEmail confirms an email address with the emailed token
	VerifyEmail(ctx context.Context, token string) (*identity.Session, error)
	// UpdateNotifications stores the email notification switches on the identity
	UpdateNotifications(ctx context.Context, caller Caller, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error)

	// GetProfile returns the profile with its social links
	GetProfile(ctx context.Context, userID uuid.UUID) (*schema.Profile, error)
	// UpdateProfile applies the supplied profile fields
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*schema.Profile, error)
	// SetupProfile completes the profile after registration
	SetupProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*schema.Profile, error)

	// GetLicenseAgreement returns the agreement; domain.ErrNotFound when none was saved
	GetLicenseAgreement(ctx context.Context, userID uuid.UUID) (*schema.LicenseAgreement, error)
	// SaveLicenseAgreement creates or replaces the agreement
	SaveLicenseAgreement(ctx context.Context, userID uuid.UUID, input LicenseAgreementInput) (*schema.LicenseAgreement, error)

	// UploadAsset stores an image and returns its public reference
	UploadAsset(ctx context.Context, userID uuid.UUID, kind domain.AssetKind, filename string, content io.Reader) (*storage.Asset, error)
}

type service struct {
	cfg      Config
	identity identity.Provider
	store    store.Store
	activity activity.Service
	storage  storage.Storage
}

// NewService creates an account service
func NewService(cfg Config, provider identity.Provider, st store.Store, activitySvc activity.Service, assets storage.Storage) Service {
	return &service{
		cfg:      cfg,
		identity: provider,
		store:    st,
		activity: activitySvc,
		storage:  assets,
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) < MinArtistNameLength {
		return nil, domain.NewValidationError("name", fmt.Sprintf("must be at least %d characters", MinArtistNameLength))
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword("password", input.Password); err != nil {
		return nil, err
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return nil, domain.NewValidationError("confirm_password", "passwords do not match")
	}

	signUp, err := s.identity.SignUp(ctx, email, input.Password,
		map[string]interface{}{identity.MetadataArtistName: name},
		s.cfg.EmailRedirectURL)
	if err != nil {
		return nil, identityError(ctx, "failed to sign up", err)
	}

	// A failure here is recovered on first login, which provisions the profile again
	created, err := s.store.EnsureProfile(ctx, &schema.Profile{ID: signUp.User.ID, ArtistName: name})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to provision profile: %w", err), zap.String("userID", signUp.User.ID.String()))
	} else if created {
		s.recordActivity(ctx, signUp.User.ID, domain.ActivityAccountCreated, "Account created")
	}

	return &RegisterResult{
		User:                signUp.User,
		Session:             signUp.Session,
		ConfirmationPending: signUp.ConfirmationPending(),
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*identity.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	// Unknown accounts get a distinct answer so the client can offer registration.
	// The lookup needs admin access; without it the sign-in result decides.
	if _, err := s.identity.FindUserByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		logger.WarnCtx(ctx, "Skipping user lookup before sign in", zap.Error(err))
	}

	session, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, identityError(ctx, "failed to sign in", err)
	}

	artistName := session.User.ArtistName()
	if artistName == "" {
		artistName = strings.SplitN(session.User.Email, "@", 2)[0]
	}
	created, err := s.store.EnsureProfile(ctx, &schema.Profile{ID: session.User.ID, ArtistName: artistName})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to provision profile: %w", err), zap.String("userID", session.User.ID.String()))
		return nil, domain.ErrPersistence
	}
	if created {
		logger.InfoCtx(ctx, "Provisioned profile on first login", zap.String("userID", session.User.ID.String()))
	}

	return session, nil
}

func (s *service) CheckSession(ctx context.Context, accessToken string) (*identity.User, error) {
	if accessToken == "" {
		return nil, nil
	}
	user, err := s.identity.VerifySession(ctx, accessToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return nil, nil
		}
		return nil, identityError(ctx, "failed to verify session", err)
	}
	return user, nil
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	if err := s.identity.SignOut(ctx, accessToken); err != nil {
		return identityError(ctx, "failed to sign out", err)
	}
	return nil
}

func (s *service) UpdatePassword(ctx context.Context, caller Caller, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return domain.NewValidationError("current_password", "is required")
	}
	if err := validatePassword("new_password", newPassword); err != nil {
		return err
	}
	if err := s.reauthenticate(ctx, caller, "current_password", currentPassword); err != nil {
		return err
	}

	if _, err := s.identity.UpdateUser(ctx, caller.AccessToken, identity.UserAttributes{Password: &newPassword}); err != nil {
		return identityError(ctx, "failed to update password", err)
	}

	s.recordActivity(ctx, caller.User.ID, domain.ActivityPasswordChanged, "Password changed successfully")
	return nil
}

func (s *service) DeleteAccount(ctx context.Context, caller Caller, password string) error {
	if password == "" {
		return domain.NewValidationError("password", "is required")
	}
	if err := s.reauthenticate(ctx, caller, "password", password); err != nil {
		return err
	}

	userID := caller.User.ID
	assets := s.ownedAssetURLs(ctx, userID)

	if err := s.store.DeleteUserData(ctx, userID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to delete user data: %w", err), zap.String("userID", userID.String()))
		return domain.ErrPersistence
	}

	if err := s.identity.DeleteUser(ctx, userID); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return identityError(ctx, "failed to delete identity", err)
	}

	if err := s.identity.SignOut(ctx, caller.AccessToken); err != nil {
		logger.WarnCtx(ctx, "Failed to sign out deleted account", zap.Error(err))
	}

	for _, u := range assets {
		if err := s.storage.Remove(ctx, u); err != nil {
			logger.WarnCtx(ctx, "Failed to remove asset of deleted account", zap.Error(err), zap.String("url", u))
		}
	}

	logger.InfoCtx(ctx, "Deleted account", zap.String("userID", userID.String()))
	return nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := s.identity.RequestPasswordReset(ctx, email, s.cfg.PasswordResetRedirectURL); err != nil {
		return identityError(ctx, "failed to request password reset", err)
	}
	return nil
}

func (s *service) VerifyEmail(ctx context.Context, token string) (*identity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewValidationError("token", "is required")
	}
	session, err := s.identity.VerifyEmail(ctx, token)
	if err != nil {
		return nil, identityError(ctx, "failed to verify email", err)
	}
	return session, nil
}

func (s *service) UpdateNotifications(ctx context.Context, caller Caller, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	_, err := s.identity.UpdateUser(ctx, caller.AccessToken, identity.UserAttributes{
		Data: map[string]interface{}{
			identity.MetadataNotificationPreferences: map[string]interface{}{
				"releases":  prefs.Releases,
				"analytics": prefs.Analytics,
				"payments":  prefs.Payments,
				"marketing": prefs.Marketing,
			},
		},
	})
	if err != nil {
		return nil, identityError(ctx, "failed to update notification preferences", err)
	}

	s.recordActivity(ctx, caller.User.ID, domain.ActivitySettingsUpdated, "Notification settings updated")
	return &prefs, nil
}

// reauthenticate checks the password of the caller by signing in again
func (s *service) reauthenticate(ctx context.Context, caller Caller, field, password string) error {
	if _, err := s.identity.SignIn(ctx, caller.User.Email, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.NewValidationError(field, "is incorrect")
		}
		return identityError(ctx, "failed to verify password", err)
	}
	return nil
}

// ownedAssetURLs collects stored asset references of a user before the rows are deleted.
// Lookups are best-effort: a missed asset only leaves an orphaned object behind.
func (s *service) ownedAssetURLs(ctx context.Context, userID uuid.UUID) []string {
	var urls []string
	add := func(u *string) {
		if u != nil && *u != "" {
			urls = append(urls, *u)
		}
	}

	if profile, err := s.store.GetProfile(ctx, userID); err == nil && profile != nil {
		add(profile.ProfileImageURL)
	}
	if agreement, err := s.store.GetLicenseAgreement(ctx, userID); err == nil && agreement != nil {
		add(agreement.SignatureURL)
	}
	if releases, err := s.store.ListReleases(ctx, userID, 0); err == nil {
		for _, r := range releases {
			add(r.CoverArtURL)
		}
	}
	return urls
}

func (s *service) recordActivity(ctx context.Context, userID uuid.UUID, activityType domain.ActivityType, title string) {
	_ = s.activity.Record(ctx, userID, activityType, title, nil, nil)
}

// identityError passes the domain errors of the identity provider through and
// hides anything else behind ErrIdentityProvider
func identityError(ctx context.Context, msg string, err error) error {
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrEmailNotConfirmed),
		errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrUserNotFound):
		return err
	}
	logger.ErrorCtx(ctx, fmt.Errorf("%s: %w", msg, err))
	return domain.ErrIdentityProvider
}

// validate applies the rules request binding uses
var validate = validator.New(validator.WithRequiredStructEnabled())

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.NewValidationError("email", "is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", domain.NewValidationError("email", "must be a valid email address")
	}
	return email, nil
}

func validatePassword(field, password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.NewValidationError(field, fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	return nil
}
