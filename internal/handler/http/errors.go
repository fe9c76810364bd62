// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/farm-ledger/internal/utils"
	"github.com/MKhiriev/farm-ledger/models"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// writeError sends a JSON error body of the form {"error": msg}.
// Every error response of the API goes through this single helper so that
// clients can rely on one shape regardless of which layer rejected the
// request.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode) //nolint:errcheck
}
