package http

import (
	"github.com/MKhiriev/go-wallet-tracker/internal/config"
	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// cfg supplies the session cookie parameters: lifetime follows the
	// token duration, the Secure attribute follows the environment.
	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
