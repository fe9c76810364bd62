package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/models"

	"github.com/google/uuid"
)

// noteImageKeyPrefix marks keys created through the standalone upload
// endpoint, keeping them distinguishable from receipt photos attached to
// sales.
const noteImageKeyPrefix = "note-"

// defaultImageContentType is assumed when a client omits the MIME type of an
// uploaded image.
const defaultImageContentType = "image/jpeg"

// newBlobKey derives a fresh object-store key for an uploaded image.
// The millisecond timestamp keeps keys roughly sortable by upload time; the
// UUID makes collisions practically impossible even for concurrent uploads
// within the same millisecond. The original file extension is preserved so
// that keys stay recognisable in bucket listings.
func newBlobKey(filename string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(filename))
}

// blobService is the concrete implementation of BlobService.
type blobService struct {
	blobStore store.BlobStore
	logger    *logger.Logger
}

// NewBlobService constructs a BlobService over the given object store.
func NewBlobService(blobStore store.BlobStore, logger *logger.Logger) BlobService {
	return &blobService{
		blobStore: blobStore,
		logger:    logger,
	}
}

// UploadNoteImage stores a standalone image and returns its key. The key is
// what note content embeds to reference the image later.
//
// Returns ErrInvalidDataProvided when the upload carries no payload.
func (b *blobService) UploadNoteImage(ctx context.Context, upload models.ImageUpload) (string, error) {
	log := logger.FromContext(ctx)

	if len(upload.Data) == 0 {
		log.Error().Str("filename", upload.Filename).Msg("empty image upload")
		return "", ErrInvalidDataProvided
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultImageContentType
	}

	key := noteImageKeyPrefix + newBlobKey(upload.Filename)

	if err := b.blobStore.Put(ctx, key, contentType, upload.Data); err != nil {
		log.Err(err).Str("key", key).Msg("note image upload failed")
		return "", fmt.Errorf("note image upload failed: %w", err)
	}

	return key, nil
}

// FetchImage returns the stored image under key.
//
// Returns a wrapped store.ErrBlobNotFound when no such image exists.
func (b *blobService) FetchImage(ctx context.Context, key string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return models.Blob{}, ErrInvalidDataProvided
	}

	blob, err := b.blobStore.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("image fetch failed")
		return models.Blob{}, fmt.Errorf("image fetch failed: %w", err)
	}

	return blob, nil
}
