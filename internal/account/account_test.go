package account_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/identity"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/mocks"
	"github.com/indietrack/artist-dashboard/internal/storage"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = account.Config{
	EmailRedirectURL:         "https://dashboard.example.com/auth/confirm-email",
	PasswordResetRedirectURL: "https://dashboard.example.com/reset-password",
}

type testAccountMocks struct {
	ctrl     *gomock.Controller
	identity *mocks.MockIdentityProvider
	store    *mocks.MockStore
	activity *mocks.MockActivityService
	storage  *mocks.MockStorage
	service  account.Service
}

func setupTestAccount(t *testing.T) *testAccountMocks {
	ctrl := gomock.NewController(t)
	tm := &testAccountMocks{
		ctrl:     ctrl,
		identity: mocks.NewMockIdentityProvider(ctrl),
		store:    mocks.NewMockStore(ctrl),
		activity: mocks.NewMockActivityService(ctrl),
		storage:  mocks.NewMockStorage(ctrl),
	}
	tm.service = account.NewService(testConfig, tm.identity, tm.store, tm.activity, tm.storage)
	return tm
}

func ptr[T any](v T) *T {
	return &v
}

func testCaller() account.Caller {
	return account.Caller{
		AccessToken: "access-token",
		User:        identity.User{ID: uuid.New(), Email: "artist@example.com", EmailConfirmed: true},
	}
}

// =============================================================================
// Registration and login
// =============================================================================

func TestService_Register(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	tm.identity.EXPECT().
		SignUp(gomock.Any(), "nova@example.com", "secret123",
			map[string]interface{}{identity.MetadataArtistName: "Nova"}, testConfig.EmailRedirectURL).
		Return(&identity.SignUpResult{User: identity.User{ID: userID, Email: "nova@example.com"}}, nil)
	tm.store.EXPECT().
		EnsureProfile(gomock.Any(), &schema.Profile{ID: userID, ArtistName: "Nova"}).
		Return(true, nil)
	tm.activity.EXPECT().
		Record(gomock.Any(), userID, domain.ActivityAccountCreated, "Account created", nil, nil).
		Return(nil)

	result, err := tm.service.Register(context.Background(), account.RegisterInput{
		Name:            " Nova ",
		Email:           " Nova@Example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.ID)
	assert.True(t, result.ConfirmationPending)
	assert.Nil(t, result.Session)
}

func TestService_Register_ProfileFailureDoesNotFailSignUp(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	session := &identity.Session{AccessToken: "t", User: identity.User{ID: userID, EmailConfirmed: true}}
	tm.identity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&identity.SignUpResult{User: session.User, Session: session}, nil)
	tm.store.EXPECT().EnsureProfile(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

	result, err := tm.service.Register(context.Background(), account.RegisterInput{
		Name: "Nova", Email: "nova@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, result.ConfirmationPending)
	assert.Equal(t, session, result.Session)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     account.RegisterInput
		wantField string
	}{
		{name: "short name", input: account.RegisterInput{Name: "N", Email: "n@example.com", Password: "secret123"}, wantField: "name"},
		{name: "bad email", input: account.RegisterInput{Name: "Nova", Email: "not-an-email", Password: "secret123"}, wantField: "email"},
		{name: "email without domain", input: account.RegisterInput{Name: "Nova", Email: "nova@", Password: "secret123"}, wantField: "email"},
		{name: "email with spaces", input: account.RegisterInput{Name: "Nova", Email: "nova artist@example.com", Password: "secret123"}, wantField: "email"},
		{name: "display name email", input: account.RegisterInput{Name: "Nova", Email: "Nova <n@example.com>", Password: "secret123"}, wantField: "email"},
		{name: "short password", input: account.RegisterInput{Name: "Nova", Email: "n@example.com", Password: "abc"}, wantField: "password"},
		{name: "mismatch", input: account.RegisterInput{Name: "Nova", Email: "n@example.com", Password: "secret123", ConfirmPassword: "secret124"}, wantField: "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAccount(t)
			defer tm.ctrl.Finish()

			_, err := tm.service.Register(context.Background(), tt.input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestService_Register_IdentityFailureIsHidden(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.identity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("gotrue: 503 upstream connect error"))

	_, err := tm.service.Register(context.Background(), account.RegisterInput{
		Name: "Nova", Email: "nova@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrIdentityProvider)
	assert.NotContains(t, err.Error(), "upstream")
}

func TestService_Login(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	session := &identity.Session{
		AccessToken: "token",
		User: identity.User{
			ID:           userID,
			Email:        "nova@example.com",
			UserMetadata: map[string]interface{}{identity.MetadataArtistName: "Nova"},
		},
	}
	tm.identity.EXPECT().FindUserByEmail(gomock.Any(), "nova@example.com").Return(&session.User, nil)
	tm.identity.EXPECT().SignIn(gomock.Any(), "nova@example.com", "secret123").Return(session, nil)
	tm.store.EXPECT().EnsureProfile(gomock.Any(), &schema.Profile{ID: userID, ArtistName: "Nova"}).Return(false, nil)

	got, err := tm.service.Login(context.Background(), "nova@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestService_Login_FirstLoginUsesEmailName(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	session := &identity.Session{User: identity.User{ID: userID, Email: "dj.kite@example.com"}}
	tm.identity.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(nil, domain.ErrIdentityProvider)
	tm.identity.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
	tm.store.EXPECT().EnsureProfile(gomock.Any(), &schema.Profile{ID: userID, ArtistName: "dj.kite"}).Return(true, nil)

	_, err := tm.service.Login(context.Background(), "dj.kite@example.com", "secret123")
	require.NoError(t, err)
}

func TestService_Login_Errors(t *testing.T) {
	tests := []struct {
		name      string
		lookupErr error
		signInErr error
		wantErr   error
	}{
		{name: "unknown user", lookupErr: domain.ErrUserNotFound, wantErr: domain.ErrUserNotFound},
		{name: "wrong password", signInErr: domain.ErrInvalidCredentials, wantErr: domain.ErrInvalidCredentials},
		{name: "unconfirmed", signInErr: domain.ErrEmailNotConfirmed, wantErr: domain.ErrEmailNotConfirmed},
		{name: "provider down", signInErr: errors.New("dial tcp: i/o timeout"), wantErr: domain.ErrIdentityProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAccount(t)
			defer tm.ctrl.Finish()

			tm.identity.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(&identity.User{}, tt.lookupErr)
			if tt.lookupErr == nil {
				tm.identity.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.signInErr)
			}

			_, err := tm.service.Login(context.Background(), "nova@example.com", "secret123")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CheckSession(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	user := &identity.User{ID: uuid.New()}
	tm.identity.EXPECT().VerifySession(gomock.Any(), "valid").Return(user, nil)
	tm.identity.EXPECT().VerifySession(gomock.Any(), "expired").Return(nil, domain.ErrNotAuthorized)

	got, err := tm.service.CheckSession(context.Background(), "valid")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	got, err = tm.service.CheckSession(context.Background(), "expired")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = tm.service.CheckSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// =============================================================================
// Password, deletion and settings
// =============================================================================

func TestService_UpdatePassword(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	caller := testCaller()
	gomock.InOrder(
		tm.identity.EXPECT().SignIn(gomock.Any(), caller.User.Email, "old-secret").Return(&identity.Session{}, nil),
		tm.identity.EXPECT().
			UpdateUser(gomock.Any(), caller.AccessToken, identity.UserAttributes{Password: ptr("new-secret")}).
			Return(&caller.User, nil),
		tm.activity.EXPECT().
			Record(gomock.Any(), caller.User.ID, domain.ActivityPasswordChanged, gomock.Any(), nil, nil).
			Return(nil),
	)

	require.NoError(t, tm.service.UpdatePassword(context.Background(), caller, "old-secret", "new-secret"))
}

func TestService_UpdatePassword_WrongCurrent(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.identity.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidCredentials)

	err := tm.service.UpdatePassword(context.Background(), testCaller(), "guess", "new-secret")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "current_password", ve.Field)
}

func TestService_UpdatePassword_TooShort(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	err := tm.service.UpdatePassword(context.Background(), testCaller(), "old-secret", "123")
	assert.True(t, domain.IsValidationError(err))
}

func TestService_DeleteAccount(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	caller := testCaller()
	avatar := "https://imagedelivery.net/hash/avatar-1/public"
	signature := "https://imagedelivery.net/hash/sig-1/public"
	cover := "https://imagedelivery.net/hash/cover-1/public"

	tm.identity.EXPECT().SignIn(gomock.Any(), caller.User.Email, "secret123").Return(&identity.Session{}, nil)
	tm.store.EXPECT().GetProfile(gomock.Any(), caller.User.ID).Return(&schema.Profile{ID: caller.User.ID, ProfileImageURL: &avatar}, nil)
	tm.store.EXPECT().GetLicenseAgreement(gomock.Any(), caller.User.ID).Return(&schema.LicenseAgreement{SignatureURL: &signature}, nil)
	tm.store.EXPECT().ListReleases(gomock.Any(), caller.User.ID, 0).Return([]schema.Release{{CoverArtURL: &cover}, {}}, nil)

	gomock.InOrder(
		tm.store.EXPECT().DeleteUserData(gomock.Any(), caller.User.ID).Return(nil),
		tm.identity.EXPECT().DeleteUser(gomock.Any(), caller.User.ID).Return(nil),
		tm.identity.EXPECT().SignOut(gomock.Any(), caller.AccessToken).Return(nil),
	)
	tm.storage.EXPECT().Remove(gomock.Any(), avatar).Return(nil)
	tm.storage.EXPECT().Remove(gomock.Any(), signature).Return(errors.New("cloudflare: 500"))
	tm.storage.EXPECT().Remove(gomock.Any(), cover).Return(nil)

	require.NoError(t, tm.service.DeleteAccount(context.Background(), caller, "secret123"))
}

func TestService_DeleteAccount_WrongPassword(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.identity.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidCredentials)

	err := tm.service.DeleteAccount(context.Background(), testCaller(), "guess")
	assert.True(t, domain.IsValidationError(err))
}

func TestService_DeleteAccount_DataFailureKeepsIdentity(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	caller := testCaller()
	tm.identity.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(&identity.Session{}, nil)
	tm.store.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().GetLicenseAgreement(gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().ListReleases(gomock.Any(), gomock.Any(), 0).Return(nil, nil)
	tm.store.EXPECT().DeleteUserData(gomock.Any(), caller.User.ID).Return(errors.New("serialization failure"))

	err := tm.service.DeleteAccount(context.Background(), caller, "secret123")
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestService_RequestPasswordReset(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.identity.EXPECT().
		RequestPasswordReset(gomock.Any(), "nova@example.com", testConfig.PasswordResetRedirectURL).
		Return(nil)

	require.NoError(t, tm.service.RequestPasswordReset(context.Background(), "NOVA@example.com "))
	assert.True(t, domain.IsValidationError(tm.service.RequestPasswordReset(context.Background(), "")))
}

func TestService_VerifyEmail(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	session := &identity.Session{AccessToken: "fresh"}
	tm.identity.EXPECT().VerifyEmail(gomock.Any(), "token-hash").Return(session, nil)
	tm.identity.EXPECT().VerifyEmail(gomock.Any(), "stale").Return(nil, domain.NewValidationError("token", "is invalid or has expired"))

	got, err := tm.service.VerifyEmail(context.Background(), "token-hash")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = tm.service.VerifyEmail(context.Background(), "stale")
	assert.True(t, domain.IsValidationError(err))

	_, err = tm.service.VerifyEmail(context.Background(), " ")
	assert.True(t, domain.IsValidationError(err))
}

func TestService_UpdateNotifications(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	caller := testCaller()
	prefs := domain.NotificationPreferences{Releases: true, Payments: true}
	tm.identity.EXPECT().
		UpdateUser(gomock.Any(), caller.AccessToken, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, attrs identity.UserAttributes) (*identity.User, error) {
			assert.Nil(t, attrs.Password)
			stored := attrs.Data[identity.MetadataNotificationPreferences].(map[string]interface{})
			assert.Equal(t, true, stored["releases"])
			assert.Equal(t, false, stored["analytics"])
			assert.Equal(t, true, stored["payments"])
			assert.Equal(t, false, stored["marketing"])
			return &caller.User, nil
		})
	tm.activity.EXPECT().
		Record(gomock.Any(), caller.User.ID, domain.ActivitySettingsUpdated, "Notification settings updated", nil, nil).
		Return(nil)

	got, err := tm.service.UpdateNotifications(context.Background(), caller, prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, *got)
}

// =============================================================================
// Profile
// =============================================================================

func TestService_UpdateProfile(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	oldAvatar := "https://imagedelivery.net/hash/old/public"
	newAvatar := "https://imagedelivery.net/hash/new/public"
	before := &schema.Profile{ID: userID, ArtistName: "Nova", ProfileImageURL: &oldAvatar}
	after := &schema.Profile{ID: userID, ArtistName: "Nova Lights", ProfileImageURL: &newAvatar}

	gomock.InOrder(
		tm.store.EXPECT().GetProfile(gomock.Any(), userID).Return(before, nil),
		tm.store.EXPECT().
			UpdateProfile(gomock.Any(), userID, store.UpdateProfileInput{ArtistName: ptr("Nova Lights"), ProfileImageURL: &newAvatar}).
			Return(after, nil),
		tm.store.EXPECT().
			ReplaceSocialLinks(gomock.Any(), userID, []store.SocialLinkInput{{Platform: "spotify", URL: "https://open.spotify.com/artist/1"}}).
			Return(nil),
		tm.storage.EXPECT().Remove(gomock.Any(), oldAvatar).Return(nil),
		tm.store.EXPECT().GetProfile(gomock.Any(), userID).Return(after, nil),
		tm.activity.EXPECT().Record(gomock.Any(), userID, domain.ActivityProfileUpdated, "Profile updated", nil, nil).Return(nil),
	)

	got, err := tm.service.UpdateProfile(context.Background(), userID, account.ProfileInput{
		ArtistName:      ptr(" Nova Lights "),
		ProfileImageURL: &newAvatar,
		SocialLinks: []account.SocialLink{
			{Platform: "Spotify", URL: "https://open.spotify.com/artist/1"},
			{Platform: "instagram", URL: ""},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, after, got)
}

func TestService_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     account.ProfileInput
		wantField string
	}{
		{name: "short name", input: account.ProfileInput{ArtistName: ptr("X")}, wantField: "artist_name"},
		{name: "long bio", input: account.ProfileInput{Bio: ptr(strings.Repeat("b", account.MaxBioLength+1))}, wantField: "bio"},
		{name: "bad avatar url", input: account.ProfileInput{ProfileImageURL: ptr("avatar.png")}, wantField: "profile_image_url"},
		{name: "bad link", input: account.ProfileInput{SocialLinks: []account.SocialLink{{Platform: "x", URL: "javascript:alert(1)"}}}, wantField: "social_links"},
		{name: "duplicate link", input: account.ProfileInput{SocialLinks: []account.SocialLink{
			{Platform: "spotify", URL: "https://a.example.com"},
			{Platform: "Spotify", URL: "https://b.example.com"},
		}}, wantField: "social_links"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAccount(t)
			defer tm.ctrl.Finish()

			_, err := tm.service.UpdateProfile(context.Background(), uuid.New(), tt.input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestService_UpdateProfile_Missing(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := tm.service.UpdateProfile(context.Background(), uuid.New(), account.ProfileInput{Genre: ptr("House")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SetupProfile(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	profile := &schema.Profile{ID: userID, ArtistName: "Nova", Genre: ptr("Ambient")}

	tm.store.EXPECT().EnsureProfile(gomock.Any(), &schema.Profile{ID: userID, ArtistName: "Nova"}).Return(false, nil)
	tm.store.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil).Times(2)
	tm.store.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(profile, nil)
	tm.activity.EXPECT().Record(gomock.Any(), userID, domain.ActivityProfileCreated, "Profile setup completed", nil, nil).Return(nil)

	got, err := tm.service.SetupProfile(context.Background(), userID, account.ProfileInput{
		ArtistName: ptr("Nova"),
		Genre:      ptr("Ambient"),
	})
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = tm.service.SetupProfile(context.Background(), userID, account.ProfileInput{})
	assert.True(t, domain.IsValidationError(err))
}

// =============================================================================
// License agreement and uploads
// =============================================================================

func TestService_SaveLicenseAgreement(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	tm.store.EXPECT().
		UpsertLicenseAgreement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *schema.LicenseAgreement) (*schema.LicenseAgreement, error) {
			assert.Equal(t, userID, a.UserID)
			assert.Equal(t, "Jane Doe", a.FullName)
			assert.Equal(t, "AB123456", a.PassportNumber)
			assert.True(t, a.AgreedToTerms)
			return a, nil
		})
	tm.activity.EXPECT().Record(gomock.Any(), userID, domain.ActivitySettingsUpdated, "License agreement saved", nil, nil).Return(nil)

	saved, err := tm.service.SaveLicenseAgreement(context.Background(), userID, account.LicenseAgreementInput{
		FullName:       " Jane Doe ",
		Address:        "1 Main Street, Springfield",
		PassportNumber: "AB123456",
		SignatureURL:   ptr("https://imagedelivery.net/hash/sig/public"),
		AgreedToTerms:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", saved.FullName)
}

func TestService_SaveLicenseAgreement_Validation(t *testing.T) {
	valid := account.LicenseAgreementInput{
		FullName:       "Jane Doe",
		Address:        "1 Main Street",
		PassportNumber: "AB123456",
		AgreedToTerms:  true,
	}

	tests := []struct {
		name      string
		mutate    func(in *account.LicenseAgreementInput)
		wantField string
	}{
		{name: "name", mutate: func(in *account.LicenseAgreementInput) { in.FullName = "J" }, wantField: "full_name"},
		{name: "address", mutate: func(in *account.LicenseAgreementInput) { in.Address = "Main" }, wantField: "address"},
		{name: "passport", mutate: func(in *account.LicenseAgreementInput) { in.PassportNumber = "12345" }, wantField: "passport_number"},
		{name: "consent", mutate: func(in *account.LicenseAgreementInput) { in.AgreedToTerms = false }, wantField: "agreed_to_terms"},
		{name: "signature", mutate: func(in *account.LicenseAgreementInput) { in.SignatureURL = ptr("ftp://x") }, wantField: "signature_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAccount(t)
			defer tm.ctrl.Finish()

			input := valid
			tt.mutate(&input)
			_, err := tm.service.SaveLicenseAgreement(context.Background(), uuid.New(), input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestService_GetLicenseAgreement_Missing(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetLicenseAgreement(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := tm.service.GetLicenseAgreement(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UploadAsset(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	content := strings.NewReader("png bytes")
	asset := &storage.Asset{ID: "img-1", Key: "avatar/" + userID.String() + "/01J.png", URL: "https://imagedelivery.net/hash/img-1/public", Size: 9}

	tm.storage.EXPECT().
		Upload(gomock.Any(), storage.UploadInput{Kind: domain.AssetKindAvatar, OwnerID: userID, Filename: "me.png", Content: content}).
		Return(asset, nil)

	got, err := tm.service.UploadAsset(context.Background(), userID, domain.AssetKindAvatar, "me.png", content)
	require.NoError(t, err)
	assert.Equal(t, asset, got)
}

func TestService_UploadAsset_Errors(t *testing.T) {
	tm := setupTestAccount(t)
	defer tm.ctrl.Finish()

	_, err := tm.service.UploadAsset(context.Background(), uuid.New(), domain.AssetKind("video"), "clip.mp4", strings.NewReader("x"))
	assert.True(t, domain.IsValidationError(err))

	tm.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUnsupportedContentType)
	_, err = tm.service.UploadAsset(context.Background(), uuid.New(), domain.AssetKindCoverArt, "cover.pdf", strings.NewReader("%PDF"))
	assert.True(t, domain.IsValidationError(err))

	tm.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, errors.New("cloudflare: 500"))
	_, err = tm.service.UploadAsset(context.Background(), uuid.New(), domain.AssetKindCoverArt, "cover.png", strings.NewReader("png"))
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
