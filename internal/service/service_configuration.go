// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/internal/store"
	"github.com/MKhiriev/realsense-capture-service/models"
)

const (
	// ConfigurationDirName is the directory under the user's home that holds
	// config.yaml.
	ConfigurationDirName = ".realsense-capture-service"

	// CaptureDirName is the directory under the user's home used as the
	// default storage path.
	CaptureDirName = "realsense_captures"
)

// HomeDirFunc returns the current user's home directory. os.UserHomeDir
// satisfies it.
type HomeDirFunc func() (string, error)

// ConfigurationDir returns <home>/.realsense-capture-service.
func ConfigurationDir(homeDir HomeDirFunc) (string, error) {
	home, err := lookupHome(homeDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ConfigurationDirName), nil
}

// DefaultConfiguration returns a configuration whose storage path is
// <home>/realsense_captures.
func DefaultConfiguration(homeDir HomeDirFunc) (models.Configuration, error) {
	home, err := lookupHome(homeDir)
	if err != nil {
		return models.Configuration{}, err
	}

	return models.Configuration{StoragePath: filepath.Join(home, CaptureDirName)}, nil
}

func lookupHome(homeDir HomeDirFunc) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirUnavailable, err)
	}
	if home == "" {
		return "", ErrHomeDirUnavailable
	}

	return home, nil
}

type configurationResolver struct {
	storage store.ConfigurationStorage
	homeDir HomeDirFunc

	logger *logger.Logger
}

// NewConfigurationResolver builds a [ConfigurationResolver] over storage.
// homeDir is consulted again when a default configuration has to be
// synthesized.
func NewConfigurationResolver(storage store.ConfigurationStorage, homeDir HomeDirFunc, logger *logger.Logger) (ConfigurationResolver, error) {
	if storage == nil {
		return nil, ErrNoConfigurationStorage
	}

	return &configurationResolver{
		storage: storage,
		homeDir: homeDir,
		logger:  logger,
	}, nil
}

// NewFileConfigurationResolver resolves the configuration from
// <home>/.realsense-capture-service/config.yaml.
func NewFileConfigurationResolver(homeDir HomeDirFunc, logger *logger.Logger) (ConfigurationResolver, error) {
	dir, err := ConfigurationDir(homeDir)
	if err != nil {
		return nil, fmt.Errorf("error locating configuration directory: %w", err)
	}

	return NewConfigurationResolver(store.NewConfigurationFileStorage(dir), homeDir, logger)
}

// Resolve loads the configuration document when it exists. Otherwise it
// persists and returns the default configuration. An existing document is
// never overwritten, and a malformed one is an error, not a reason to fall
// back to defaults.
func (r *configurationResolver) Resolve(ctx context.Context) (models.Configuration, error) {
	path := r.storage.Path()

	exists, err := r.storage.Exists(ctx)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("error checking configuration file: %w", err)
	}

	if exists {
		cfg, err := r.storage.Load(ctx)
		if err != nil {
			return models.Configuration{}, fmt.Errorf("error loading configuration: %w", err)
		}

		r.logger.Info().Str("path", path).Msg("using configuration located at path")
		r.logger.Info().Any("configuration", cfg).Msg("retrieved configuration")
		return cfg, nil
	}

	r.logger.Info().Str("path", path).Msg("no configuration located at path, using default configuration")

	cfg, err := DefaultConfiguration(r.homeDir)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("error building default configuration: %w", err)
	}
	r.logger.Info().Any("configuration", cfg).Msg("default configuration")

	r.logger.Info().Str("path", path).Msg("storing configuration")
	if err := r.storage.Save(ctx, cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("error storing default configuration: %w", err)
	}

	return cfg, nil
}
