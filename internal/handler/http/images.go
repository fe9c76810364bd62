package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/service"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/internal/utils"
	"github.com/MKhiriev/farm-ledger/models"

	"github.com/go-chi/chi/v5"
)

// imageCacheControl marks served images as immutable for a year. Keys are
// never reused (timestamp + UUID), so a cached image can never go stale.
const imageCacheControl = "public, max-age=31536000"

// serveImage streams a stored image back to the client. The route is public
// so images can be embedded directly in client pages; the unguessable key is
// the access control.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	blob, err := h.services.BlobService.FetchImage(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBlobNotFound), errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "image not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("key", key).Msg("unexpected error occurred during image fetch")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", imageCacheControl)
	w.Write(blob.Data) //nolint:errcheck
}

// uploadImage stores a standalone image (referenced from note content) and
// returns its public URL.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := tenantID(w, r); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	image, err := imageFromForm(r, "image")
	if err != nil {
		log.Err(err).Msg("reading image form part failed")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	if image == nil {
		writeError(w, "image is required", http.StatusBadRequest)
		return
	}

	key, err := h.services.BlobService.UploadNoteImage(ctx, *image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "image is required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during image upload")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UploadResponse{ //nolint:errcheck
		URL: fmt.Sprintf("%s/api/images/%s", h.publicBaseURL, key),
	}, http.StatusOK)
}
