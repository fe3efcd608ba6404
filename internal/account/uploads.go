package account

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/metrics"
	"github.com/indietrack/artist-dashboard/internal/storage"
)

func (s *service) UploadAsset(ctx context.Context, userID uuid.UUID, kind domain.AssetKind, filename string, content io.Reader) (*storage.Asset, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", "must be one of cover-art, avatar, signature")
	}

	asset, err := s.storage.Upload(ctx, storage.UploadInput{
		Kind:     kind,
		OwnerID:  userID,
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		metrics.RecordUpload(string(kind), 0, false)
		if errors.Is(err, storage.ErrUnsupportedContentType) {
			return nil, domain.NewValidationError("file", err.Error())
		}
		if domain.IsValidationError(err) {
			return nil, err
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to upload asset: %w", err),
			zap.String("userID", userID.String()),
			zap.String("kind", string(kind)),
		)
		return nil, domain.ErrPersistence
	}

	metrics.RecordUpload(string(kind), asset.Size, true)
	logger.InfoCtx(ctx, "Stored asset",
		zap.String("userID", userID.String()),
		zap.String("key", asset.Key),
		zap.Int64("size", asset.Size),
	)
	return asset, nil
}
