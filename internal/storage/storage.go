package storage

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/domain"
)

// ErrUnsupportedContentType is returned when an upload is not an accepted image format
var ErrUnsupportedContentType = errors.New("unsupported content type")

// UploadInput describes a single asset upload
type UploadInput struct {
	Kind     domain.AssetKind
	OwnerID  uuid.UUID
	Filename string
	Content  io.Reader
}

// Asset is a stored object
type Asset struct {
	// ID is the provider's identifier of the object
	ID string `json:"id"`
	// Key is the logical object key: <kind>/<owner>/<ulid><ext>
	Key string `json:"key"`
	// URL is the public delivery URL stored on profiles, releases and agreements
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Storage stores user uploaded assets such as cover art, avatars and signatures
//
//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks -mock_names=Storage=MockStorage
type Storage interface {
	// Upload validates and stores an asset and returns its public reference
	Upload(ctx context.Context, input UploadInput) (*Asset, error)
	// Remove deletes a previously uploaded asset by its public URL.
	// URLs that were not produced by this storage are ignored.
	Remove(ctx context.Context, assetURL string) error
}

// acceptedTypes lists the image formats accepted for every asset kind
var acceptedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}
