// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Configuration is the capture configuration resolved once at startup and
// read by the HTTP layer for the rest of the process lifetime.
//
// It is passed by value; nothing mutates it after resolution.
type Configuration struct {
	// StoragePath is the directory captures are written to.
	StoragePath string `yaml:"storage_path"`
}

// configurationDocument mirrors the on-disk layout. yaml.Node keeps the raw
// scalar text, so plain values such as 42 or true are read as written.
type configurationDocument struct {
	StoragePath yaml.Node `yaml:"storage_path"`
}

// Marshal encodes c as a YAML document.
func (c Configuration) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("error encoding configuration: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("error encoding configuration: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseConfiguration decodes a single YAML document from r.
//
// Keys other than storage_path are ignored. Any scalar storage_path is taken
// as its literal text. A missing or null storage_path, a list or mapping in
// its place, an empty input and trailing documents are rejected.
func ParseConfiguration(r io.Reader) (Configuration, error) {
	decoder := yaml.NewDecoder(r)

	var doc configurationDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Configuration{}, ErrEmptyConfigurationDocument
		}
		return Configuration{}, fmt.Errorf("error decoding configuration: %w", err)
	}

	node := &doc.StoragePath
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return Configuration{}, ErrMissingStoragePath
	}
	if node.Kind != yaml.ScalarNode {
		return Configuration{}, fmt.Errorf("%w: got %s at line %d", ErrInvalidStoragePath, node.ShortTag(), node.Line)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return Configuration{}, ErrMultipleConfigurationDocuments
	}

	return Configuration{StoragePath: node.Value}, nil
}
