package service

import (
	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/models"
)

type Services struct {
	CaptureService CaptureService
}

func NewServices(cfg models.Configuration, logger *logger.Logger) *Services {
	return &Services{
		CaptureService: NewCaptureService(cfg, logger),
	}
}
