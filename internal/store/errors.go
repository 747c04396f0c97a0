// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [ConfigurationStorage] implementations. The
// wrapped message always names the offending path; callers match the kind
// with [errors.Is].
var (
	// ErrConfigReadFailed is returned when the configuration document exists
	// (or its presence cannot be determined) but cannot be opened.
	ErrConfigReadFailed = errors.New("could not read configuration file")

	// ErrConfigParseFailed is returned when the document was read but does
	// not match the configuration schema.
	ErrConfigParseFailed = errors.New("could not parse configuration file")

	// ErrConfigDirCreateFailed is returned when the configuration directory
	// is absent and cannot be created.
	ErrConfigDirCreateFailed = errors.New("could not create configuration directory")

	// ErrConfigWriteFailed is returned when the document cannot be encoded or
	// written to disk.
	ErrConfigWriteFailed = errors.New("could not write configuration file")
)
