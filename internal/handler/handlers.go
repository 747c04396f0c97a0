package handler

import (
	"fmt"

	"github.com/MKhiriev/realsense-capture-service/internal/config"
	"github.com/MKhiriev/realsense-capture-service/internal/handler/http"
	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
