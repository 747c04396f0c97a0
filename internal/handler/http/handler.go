package http

import (
	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) (*Handler, error) {
	if services == nil || services.CaptureService == nil {
		return nil, ErrNoCaptureService
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}, nil
}
