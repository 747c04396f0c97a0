package store

import (
	"context"

	"github.com/MKhiriev/realsense-capture-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/configuration_storage_mock.go -package=mock

// ConfigurationStorage persists the capture configuration document.
type ConfigurationStorage interface {
	// Path returns the location of the configuration document.
	Path() string
	// Exists reports whether the document is present.
	Exists(ctx context.Context) (bool, error)
	// Load reads and strictly decodes the document.
	Load(ctx context.Context) (models.Configuration, error)
	// Save creates the parent directory when absent and writes the document.
	Save(ctx context.Context, cfg models.Configuration) error
}
