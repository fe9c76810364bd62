package http

import (
	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/service"
)

type Handler struct {
	services *service.Services

	// publicBaseURL is the externally reachable origin used when building
	// image URLs returned by the upload endpoint.
	publicBaseURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        logger,
	}
}
