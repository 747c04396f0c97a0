package service

import (
	"context"

	"github.com/MKhiriev/realsense-capture-service/models"
)

// ConfigurationResolver produces the capture configuration at startup,
// either from disk or by persisting a default.
type ConfigurationResolver interface {
	Resolve(ctx context.Context) (models.Configuration, error)
}

// CaptureService exposes the resolved capture configuration to transports.
type CaptureService interface {
	GetStoragePath(ctx context.Context) string
}
