package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/utils"
	"github.com/MKhiriev/farm-ledger/models"
)

// saleFromForm builds a sale from an already-parsed multipart form. Numeric
// parse failures are shape errors and rejected here; range checks belong to
// the service layer.
func saleFromForm(r *http.Request, userID int64) (models.Sale, error) {
	weight, err := strconv.ParseFloat(r.FormValue("weight"), 64)
	if err != nil {
		return models.Sale{}, err
	}

	pricePerKg, err := strconv.ParseFloat(r.FormValue("pricePerKg"), 64)
	if err != nil {
		return models.Sale{}, err
	}

	return models.Sale{
		UserID:       userID,
		Date:         r.FormValue("date"),
		WeightKg:     weight,
		PricePerKg:   pricePerKg,
		CustomerName: r.FormValue("customer"),
	}, nil
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	sale, err := saleFromForm(r, userID)
	if err != nil {
		log.Err(err).Msg("invalid sale form values")
		writeError(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	image, err := imageFromForm(r, "image")
	if err != nil {
		log.Err(err).Msg("reading image form part failed")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	created, err := h.services.SaleService.CreateSale(ctx, sale, image)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Success: true, ID: created.ID}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	sales, err := h.services.SaleService.ListSales(r.Context(), userID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, sales, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	saleID, ok := idParam(w, r)
	if !ok {
		return
	}

	sale, err := h.services.SaleService.GetSale(r.Context(), userID, saleID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, sale, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	saleID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	sale, err := saleFromForm(r, userID)
	if err != nil {
		log.Err(err).Msg("invalid sale form values")
		writeError(w, "invalid data provided", http.StatusBadRequest)
		return
	}
	sale.ID = saleID

	// image part optional on update: absent part keeps the current photo
	image, err := imageFromForm(r, "image")
	if err != nil {
		log.Err(err).Msg("reading image form part failed")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	if _, err := h.services.SaleService.UpdateSale(ctx, sale, image); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	saleID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.SaleService.DeleteSale(r.Context(), userID, saleID); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) salesSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	summary, err := h.services.SaleService.SalesSummary(r.Context(), userID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK) //nolint:errcheck
}
