package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/mocks"
	"github.com/indietrack/artist-dashboard/internal/storage"
)

// pngHeader is enough for content sniffing to detect image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type testStorageMocks struct {
	ctrl       *gomock.Controller
	cloudflare *mocks.MockCloudflareClient
	clock      *mocks.MockClock
	storage    storage.Storage
}

func setupTestStorage(t *testing.T, maxSize int64) *testStorageMocks {
	ctrl := gomock.NewController(t)
	tm := &testStorageMocks{
		ctrl:       ctrl,
		cloudflare: mocks.NewMockCloudflareClient(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	tm.storage = storage.NewCloudflareStorage(tm.cloudflare, storage.Config{
		AccountID:            "account-123",
		MaxUploadSize:        maxSize,
		RetryInitialInterval: time.Millisecond,
		RetryMaxElapsedTime:  100 * time.Millisecond,
	}, tm.clock)
	return tm
}

func TestCloudflareStorage_Upload(t *testing.T) {
	tm := setupTestStorage(t, 1024)
	defer tm.ctrl.Finish()

	owner := uuid.New()
	tm.cloudflare.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UploadImageParams) (cloudflare.Image, error) {
			assert.Equal(t, "account-123", rc.Identifier)
			assert.True(t, strings.HasSuffix(params.Name, ".png"))
			assert.Equal(t, "avatar", params.Metadata["kind"])
			assert.Equal(t, owner.String(), params.Metadata["owner_id"])

			body, err := io.ReadAll(params.File)
			require.NoError(t, err)
			assert.Equal(t, pngHeader, body)

			return cloudflare.Image{
				ID: "img-1",
				Variants: []string{
					"https://imagedelivery.net/hash/img-1/thumbnail",
					"https://imagedelivery.net/hash/img-1/public",
				},
			}, nil
		})

	asset, err := tm.storage.Upload(context.Background(), storage.UploadInput{
		Kind:     domain.AssetKindAvatar,
		OwnerID:  owner,
		Filename: "me.png",
		Content:  bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Equal(t, "img-1", asset.ID)
	assert.Equal(t, "https://imagedelivery.net/hash/img-1/public", asset.URL)
	assert.Equal(t, "image/png", asset.ContentType)
	assert.True(t, strings.HasPrefix(asset.Key, "avatar/"+owner.String()+"/"))
	assert.Equal(t, int64(len(pngHeader)), asset.Size)
}

func TestCloudflareStorage_UploadRetriesTransientErrors(t *testing.T) {
	tm := setupTestStorage(t, 1024)
	defer tm.ctrl.Finish()

	gomock.InOrder(
		tm.cloudflare.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cloudflare.Image{}, errors.New("connection reset")),
		tm.cloudflare.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cloudflare.Image{ID: "img-2", Variants: []string{"https://imagedelivery.net/hash/img-2/cover"}}, nil),
	)

	asset, err := tm.storage.Upload(context.Background(), storage.UploadInput{
		Kind:    domain.AssetKindCoverArt,
		OwnerID: uuid.New(),
		Content: bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://imagedelivery.net/hash/img-2/cover", asset.URL)
}

func TestCloudflareStorage_UploadValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.AssetKind
		content io.Reader
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown kind",
			kind:    domain.AssetKind("video"),
			content: bytes.NewReader(pngHeader),
			check:   func(t *testing.T, err error) { assert.True(t, domain.IsValidationError(err)) },
		},
		{
			name:    "empty file",
			kind:    domain.AssetKindSignature,
			content: bytes.NewReader(nil),
			check:   func(t *testing.T, err error) { assert.True(t, domain.IsValidationError(err)) },
		},
		{
			name:    "too large",
			kind:    domain.AssetKindSignature,
			content: bytes.NewReader(append(pngHeader, make([]byte, 64)...)),
			check:   func(t *testing.T, err error) { assert.True(t, domain.IsValidationError(err)) },
		},
		{
			name:    "not an image",
			kind:    domain.AssetKindCoverArt,
			content: strings.NewReader("%PDF-1.4 not an image"),
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, storage.ErrUnsupportedContentType) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestStorage(t, 32)
			defer tm.ctrl.Finish()

			_, err := tm.storage.Upload(context.Background(), storage.UploadInput{
				Kind:    tt.kind,
				OwnerID: uuid.New(),
				Content: tt.content,
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCloudflareStorage_Remove(t *testing.T) {
	tm := setupTestStorage(t, 1024)
	defer tm.ctrl.Finish()

	tm.cloudflare.EXPECT().
		DeleteImage(gomock.Any(), gomock.Any(), "img-9").
		Return(nil)

	require.NoError(t, tm.storage.Remove(context.Background(), "https://imagedelivery.net/hash/img-9/public"))
	// Foreign URLs are left alone
	require.NoError(t, tm.storage.Remove(context.Background(), "https://cdn.example.com/avatar.png"))
	require.NoError(t, tm.storage.Remove(context.Background(), ""))
}
