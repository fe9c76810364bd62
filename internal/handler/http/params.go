package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/utils"

	"github.com/go-chi/chi/v5"
)

// tenantID extracts the authenticated user's ID stored in the request
// context by the auth middleware. A missing ID means a protected handler was
// reached without the middleware; the request is rejected with 401 and the
// second return value is false.
func tenantID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

// idParam parses the {id} URL parameter. A non-numeric ID cannot match any
// row, so it is reported as 404 rather than 400, keeping absent and
// malformed identifiers indistinguishable.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "record not found", http.StatusNotFound)
		return 0, false
	}

	return id, true
}
