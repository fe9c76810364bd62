package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/models"
)

// saleService is the concrete implementation of SaleService.
//
// It owns the coupling between a sale row and its receipt photo in the object
// store: blobs are written before the rows that reference them, and rows are
// never left pointing at a key that was not stored first. On partial failure
// the orphan is always a blob, never a dangling row reference; orphan blobs
// are cleaned up best-effort.
type saleService struct {
	saleRepository store.SaleRepository
	blobStore      store.BlobStore
	logger         *logger.Logger
}

// NewSaleService constructs a SaleService over the given repository and
// object store.
func NewSaleService(saleRepository store.SaleRepository, blobStore store.BlobStore, logger *logger.Logger) SaleService {
	return &saleService{
		saleRepository: saleRepository,
		blobStore:      blobStore,
		logger:         logger,
	}
}

// validateSale checks the client-controlled fields shared by create and
// update.
func validateSale(sale models.Sale) error {
	if !validDate(sale.Date) {
		return ErrInvalidDataProvided
	}
	if sale.WeightKg <= 0 || sale.PricePerKg <= 0 {
		return ErrInvalidDataProvided
	}
	if sale.CustomerName == "" {
		return ErrInvalidDataProvided
	}

	return nil
}

// CreateSale validates the sale, stores the receipt photo and persists the
// row referencing it. TotalPrice is recomputed server-side regardless of what
// the client sent.
//
// Returns ErrImageRequired when image is nil: every sale record carries a
// receipt photo from the moment it exists. If the row insert fails after the
// blob was written, the blob is deleted best-effort so it does not leak.
func (s *saleService) CreateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error) {
	log := logger.FromContext(ctx)

	if err := validateSale(sale); err != nil {
		log.Error().Int64("user_id", sale.UserID).Msg("invalid sale data provided")
		return models.Sale{}, err
	}
	if image == nil || len(image.Data) == 0 {
		log.Error().Int64("user_id", sale.UserID).Msg("sale creation without receipt image")
		return models.Sale{}, ErrImageRequired
	}

	sale.TotalPrice = models.ComputeTotalPrice(sale.WeightKg, sale.PricePerKg)
	sale.ImageKey = newBlobKey(image.Filename)

	contentType := image.ContentType
	if contentType == "" {
		contentType = defaultImageContentType
	}

	if err := s.blobStore.Put(ctx, sale.ImageKey, contentType, image.Data); err != nil {
		log.Err(err).Int64("user_id", sale.UserID).Msg("receipt image upload failed")
		return models.Sale{}, fmt.Errorf("receipt image upload failed: %w", err)
	}

	created, err := s.saleRepository.CreateSale(ctx, sale)
	if err != nil {
		if delErr := s.blobStore.Delete(ctx, sale.ImageKey); delErr != nil {
			log.Err(delErr).Str("image_key", sale.ImageKey).Msg("orphan receipt image cleanup failed")
		}

		log.Err(err).Int64("user_id", sale.UserID).Msg("sale creation ended with error")
		return models.Sale{}, fmt.Errorf("sale creation ended with error: %w", err)
	}

	return created, nil
}

// GetSale returns the sale identified by (userID, saleID).
func (s *saleService) GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error) {
	sale, err := s.saleRepository.GetSale(ctx, userID, saleID)
	if err != nil {
		return models.Sale{}, fmt.Errorf("sale lookup ended with error: %w", err)
	}

	return sale, nil
}

// ListSales returns the user's most recent sales, newest first.
func (s *saleService) ListSales(ctx context.Context, userID int64) ([]models.Sale, error) {
	sales, err := s.saleRepository.ListSales(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sales listing ended with error: %w", err)
	}

	return sales, nil
}

// UpdateSale validates and persists new field values for an existing sale.
// When image is non-nil the receipt photo is replaced: the old blob is
// deleted, the new one written, and the row updated to reference it. When
// image is nil the existing photo is kept untouched.
//
// The ownership check runs first via GetSale, so a cross-tenant or absent
// sale fails with store.ErrRecordNotFound before any blob is touched.
func (s *saleService) UpdateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error) {
	log := logger.FromContext(ctx)

	if err := validateSale(sale); err != nil {
		log.Error().Int64("user_id", sale.UserID).Int64("sale_id", sale.ID).Msg("invalid sale data provided")
		return models.Sale{}, err
	}

	current, err := s.saleRepository.GetSale(ctx, sale.UserID, sale.ID)
	if err != nil {
		return models.Sale{}, fmt.Errorf("sale lookup ended with error: %w", err)
	}

	sale.TotalPrice = models.ComputeTotalPrice(sale.WeightKg, sale.PricePerKg)
	sale.ImageKey = current.ImageKey

	if image != nil && len(image.Data) > 0 {
		if current.ImageKey != "" {
			if err := s.blobStore.Delete(ctx, current.ImageKey); err != nil {
				log.Err(err).Str("image_key", current.ImageKey).Msg("old receipt image deletion failed")
				return models.Sale{}, fmt.Errorf("old receipt image deletion failed: %w", err)
			}
		}

		sale.ImageKey = newBlobKey(image.Filename)

		contentType := image.ContentType
		if contentType == "" {
			contentType = defaultImageContentType
		}

		if err := s.blobStore.Put(ctx, sale.ImageKey, contentType, image.Data); err != nil {
			log.Err(err).Int64("user_id", sale.UserID).Msg("receipt image upload failed")
			return models.Sale{}, fmt.Errorf("receipt image upload failed: %w", err)
		}
	}

	updated, err := s.saleRepository.UpdateSale(ctx, sale)
	if err != nil {
		if sale.ImageKey != current.ImageKey {
			if delErr := s.blobStore.Delete(ctx, sale.ImageKey); delErr != nil {
				log.Err(delErr).Str("image_key", sale.ImageKey).Msg("orphan receipt image cleanup failed")
			}
		}

		log.Err(err).Int64("user_id", sale.UserID).Int64("sale_id", sale.ID).Msg("sale update ended with error")
		return models.Sale{}, fmt.Errorf("sale update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteSale removes a sale together with its receipt photo. The blob is
// deleted first, best-effort: a failed blob deletion does not block removing
// the row, because a leaked blob is recoverable while a row pointing at a
// deleted blob is not.
func (s *saleService) DeleteSale(ctx context.Context, userID, saleID int64) error {
	log := logger.FromContext(ctx)

	sale, err := s.saleRepository.GetSale(ctx, userID, saleID)
	if err != nil {
		return fmt.Errorf("sale lookup ended with error: %w", err)
	}

	if sale.ImageKey != "" {
		if err := s.blobStore.Delete(ctx, sale.ImageKey); err != nil {
			log.Err(err).Str("image_key", sale.ImageKey).Msg("receipt image deletion failed")
		}
	}

	if err := s.saleRepository.DeleteSale(ctx, userID, saleID); err != nil {
		return fmt.Errorf("sale deletion ended with error: %w", err)
	}

	return nil
}

// SalesSummary returns the daily/monthly/yearly/all-time rollups anchored on
// the current UTC day.
func (s *saleService) SalesSummary(ctx context.Context, userID int64) (models.SalesSummary, error) {
	summary, err := s.saleRepository.SalesSummary(ctx, userID, today())
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("sales summary ended with error: %w", err)
	}

	return summary, nil
}
