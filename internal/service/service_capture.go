package service

import (
	"context"

	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/models"
)

// captureService holds a copy of the resolved configuration. The copy is
// never written after construction, so concurrent readers need no locking.
type captureService struct {
	cfg models.Configuration

	logger *logger.Logger
}

func NewCaptureService(cfg models.Configuration, logger *logger.Logger) CaptureService {
	return &captureService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *captureService) GetStoragePath(ctx context.Context) string {
	return s.cfg.StoragePath
}
