// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Decoding errors returned by [ParseConfiguration].
var (
	// ErrEmptyConfigurationDocument is returned when the input holds no YAML
	// document at all.
	ErrEmptyConfigurationDocument = errors.New("configuration document is empty")

	// ErrMissingStoragePath is returned when the document has no
	// storage_path key or the key is null.
	ErrMissingStoragePath = errors.New("missing field `storage_path`")

	// ErrInvalidStoragePath is returned when storage_path is a list or a
	// mapping instead of a scalar.
	ErrInvalidStoragePath = errors.New("`storage_path` must be a string")

	// ErrMultipleConfigurationDocuments is returned when the input contains
	// more than one YAML document.
	ErrMultipleConfigurationDocuments = errors.New("configuration must contain a single document")
)
