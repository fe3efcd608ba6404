package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cloudflare/cloudflare-go"
	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

const (
	// imageDeliveryHost serves Cloudflare Images variants:
	// https://imagedelivery.net/{account_hash}/{image_id}/{variant_name}
	imageDeliveryHost = "imagedelivery.net"
	// publicVariant is the variant referenced from stored rows
	publicVariant = "public"
)

// Config holds configuration for Cloudflare Images storage
type Config struct {
	// AccountID is the Cloudflare account ID for Images
	AccountID string
	// MaxUploadSize is the largest accepted upload in bytes
	MaxUploadSize int64
	// RetryInitialInterval and RetryMaxElapsedTime tune the upload backoff
	RetryInitialInterval time.Duration
	RetryMaxElapsedTime  time.Duration
}

type cloudflareStorage struct {
	client adapter.CloudflareClient
	cfg    Config
	rc     *cloudflare.ResourceContainer
	clock  adapter.Clock
}

// NewCloudflareStorage creates a Storage backed by Cloudflare Images
func NewCloudflareStorage(client adapter.CloudflareClient, cfg Config, clock adapter.Clock) Storage {
	if cfg.RetryInitialInterval == 0 {
		cfg.RetryInitialInterval = 500 * time.Millisecond
	}
	if cfg.RetryMaxElapsedTime == 0 {
		cfg.RetryMaxElapsedTime = 30 * time.Second
	}
	return &cloudflareStorage{
		client: client,
		cfg:    cfg,
		clock:  clock,
		rc:     cloudflare.AccountIdentifier(cfg.AccountID),
	}
}

// Upload reads the content, sniffs its type and uploads it with retries
func (s *cloudflareStorage) Upload(ctx context.Context, input UploadInput) (*Asset, error) {
	if !input.Kind.Valid() {
		return nil, domain.NewValidationError("kind", "must be one of cover-art, avatar, signature")
	}
	if input.Content == nil {
		return nil, domain.NewValidationError("file", "is required")
	}

	// Read one byte past the limit to detect oversized uploads
	data, err := io.ReadAll(io.LimitReader(input.Content, s.cfg.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "is empty")
	}
	if int64(len(data)) > s.cfg.MaxUploadSize {
		return nil, domain.NewValidationError("file", fmt.Sprintf("must be at most %d bytes", s.cfg.MaxUploadSize))
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), acceptedTypes...) {
		logger.WarnCtx(ctx, "Rejected upload content type",
			zap.String("kind", string(input.Kind)),
			zap.String("detected", mtype.String()),
			zap.String("filename", input.Filename),
		)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mtype.String())
	}

	key := fmt.Sprintf("%s/%s/%s%s",
		input.Kind, input.OwnerID, ulid.MustNewDefault(s.clock.Now()).String(), mtype.Extension())

	var image cloudflare.Image
	operation := func() error {
		params := cloudflare.UploadImageParams{
			File: io.NopCloser(bytes.NewReader(data)),
			Name: path.Base(key),
			Metadata: map[string]interface{}{
				"key":      key,
				"kind":     string(input.Kind),
				"owner_id": input.OwnerID.String(),
				"filename": input.Filename,
			},
		}

		var err error
		image, err = s.client.UploadImage(ctx, s.rc, params)
		if err == nil {
			return nil
		}

		if permanentUploadError(err) {
			return backoff.Permanent(err)
		}
		logger.WarnCtx(ctx, "Image upload failed, retrying with backoff", zap.String("key", key), zap.Error(err))
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.RetryInitialInterval
	b.MaxElapsedTime = s.cfg.RetryMaxElapsedTime
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	logger.InfoCtx(ctx, "Uploaded asset",
		zap.String("key", key),
		zap.String("imageID", image.ID),
		zap.Int("size", len(data)),
	)

	return &Asset{
		ID:          image.ID,
		Key:         key,
		URL:         deliveryURL(image),
		ContentType: mtype.String(),
		Size:        int64(len(data)),
	}, nil
}

// Remove deletes the image behind a delivery URL
func (s *cloudflareStorage) Remove(ctx context.Context, assetURL string) error {
	imageID, ok := imageIDFromURL(assetURL)
	if !ok {
		logger.DebugCtx(ctx, "Skipping removal of foreign asset URL", zap.String("url", assetURL))
		return nil
	}

	if err := s.client.DeleteImage(ctx, s.rc, imageID); err != nil {
		var notFound *cloudflare.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to delete image %s: %w", imageID, err)
	}
	return nil
}

// permanentUploadError reports whether a Cloudflare error will not go away on retry.
// Rate limiting, server errors and network failures are retried.
func permanentUploadError(err error) bool {
	var (
		requestErr *cloudflare.RequestError
		authnErr   *cloudflare.AuthenticationError
		authzErr   *cloudflare.AuthorizationError
		notFound   *cloudflare.NotFoundError
	)
	return errors.As(err, &requestErr) ||
		errors.As(err, &authnErr) ||
		errors.As(err, &authzErr) ||
		errors.As(err, &notFound)
}

// deliveryURL picks the public variant, falling back to the first variant
func deliveryURL(image cloudflare.Image) string {
	for _, v := range image.Variants {
		if path.Base(v) == publicVariant {
			return v
		}
	}
	if len(image.Variants) > 0 {
		return image.Variants[0]
	}
	return ""
}

// imageIDFromURL extracts the image id from a Cloudflare Images delivery URL
func imageIDFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != imageDeliveryHost {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 3 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
