package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/service"
	"github.com/MKhiriev/farm-ledger/internal/store"
)

// errorStatuses maps sentinel errors to HTTP statuses. Entries are matched
// in order, so precedence between sentinels is explicit rather than left to
// map iteration.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrImageRequired, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrUsernameTaken, http.StatusConflict},
	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrBlobNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// respondRecordError maps a service-layer error from a record operation to
// its HTTP response. 4xx responses surface the matched sentinel's message;
// anything unmatched is a server fault and deliberately leaks no detail.
func respondRecordError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred during record operation")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Err(err).Int("status", status).Msg("record operation rejected")

	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		writeError(w, "record not found", status)
	case errors.Is(err, service.ErrImageRequired):
		writeError(w, "image is required", status)
	case errors.Is(err, service.ErrInvalidDataProvided):
		writeError(w, "invalid data provided", status)
	default:
		writeError(w, http.StatusText(status), status)
	}
}
