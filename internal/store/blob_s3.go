package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3BlobStore is the S3-backed implementation of [BlobStore]. Receipt and
// note images live in a single bucket; keys are generated by the service
// layer and treated as opaque here.
//
// The client works against AWS S3 proper or any S3-compatible store (MinIO)
// when cfg.Endpoint overrides the base endpoint. MinIO requires path-style
// addressing, so it is enabled together with the override.
type s3BlobStore struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3BlobStore constructs a [BlobStore] from the object-store
// configuration. The client is built once at startup; all state is
// read-only after construction, so the store is safe for concurrent use.
func NewS3BlobStore(ctx context.Context, cfg config.S3, log *logger.Logger) (BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStore").Msg("error loading object store configuration")
		return nil, fmt.Errorf("error loading object store configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3BlobStore").Str("bucket", cfg.Bucket).Msg("object store client created")

	return &s3BlobStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Put stores data under key with the given content type. An existing blob
// under the same key is overwritten; key uniqueness is the caller's concern.
func (s *s3BlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3BlobStore.Put").
			Str("key", key).
			Msg("failed to upload blob")
		return fmt.Errorf("failed to upload blob: %w", err)
	}

	return nil
}

// Get fetches the blob stored under key together with its content type.
// Returns [ErrBlobNotFound] when the bucket holds no object under that key.
func (s *s3BlobStore) Get(ctx context.Context, key string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return models.Blob{}, ErrBlobNotFound
		}

		log.Err(err).
			Str("func", "*s3BlobStore.Get").
			Str("key", key).
			Msg("failed to fetch blob")
		return models.Blob{}, fmt.Errorf("failed to fetch blob: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		log.Err(err).
			Str("func", "*s3BlobStore.Get").
			Str("key", key).
			Msg("failed to read blob body")
		return models.Blob{}, fmt.Errorf("failed to read blob body: %w", err)
	}

	return models.Blob{
		ContentType: aws.ToString(out.ContentType),
		Data:        data,
	}, nil
}

// Delete removes the blob stored under key. Deleting an absent key is not an
// error: S3 DeleteObject succeeds for missing objects, which matches the
// idempotency contract of [BlobStore].
func (s *s3BlobStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil
		}

		log.Err(err).
			Str("func", "*s3BlobStore.Delete").
			Str("key", key).
			Msg("failed to delete blob")
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}
