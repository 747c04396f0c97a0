// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/realsense-capture-service/models"
)

// ConfigurationFileName is the name of the configuration document inside the
// configuration directory.
const ConfigurationFileName = "config.yaml"

const (
	configDirPerm  fs.FileMode = 0o755
	configFilePerm fs.FileMode = 0o644
)

// configurationFileStorage keeps the configuration as a single YAML file.
// The file is read without locking; a concurrent external writer may race
// the read.
type configurationFileStorage struct {
	dir  string
	path string
}

// NewConfigurationFileStorage returns a [ConfigurationStorage] backed by
// <dir>/config.yaml.
func NewConfigurationFileStorage(dir string) ConfigurationStorage {
	return &configurationFileStorage{
		dir:  dir,
		path: filepath.Join(dir, ConfigurationFileName),
	}
}

func (s *configurationFileStorage) Path() string {
	return s.path
}

func (s *configurationFileStorage) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w at %q: %w", ErrConfigReadFailed, s.path, err)
	}
}

func (s *configurationFileStorage) Load(ctx context.Context) (models.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return models.Configuration{}, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("%w at %q: %w", ErrConfigReadFailed, s.path, err)
	}
	defer file.Close()

	cfg, err := models.ParseConfiguration(file)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("%w at %q: %w", ErrConfigParseFailed, s.path, err)
	}

	return cfg, nil
}

func (s *configurationFileStorage) Save(ctx context.Context, cfg models.Configuration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("%w at %q: %w", ErrConfigWriteFailed, s.path, err)
	}

	if err := os.MkdirAll(s.dir, configDirPerm); err != nil {
		return fmt.Errorf("%w at %q: %w", ErrConfigDirCreateFailed, s.dir, err)
	}

	if err := os.WriteFile(s.path, data, configFilePerm); err != nil {
		return fmt.Errorf("%w at %q: %w", ErrConfigWriteFailed, s.path, err)
	}

	return nil
}
