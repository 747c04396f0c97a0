// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":          "0.0.0.0:9000",
		"SERVER_REQUEST_TIMEOUT":  "45s",
		"SERVER_SHUTDOWN_TIMEOUT": "2s",
		"LOG_LEVEL":               "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})

	assert.Error(t, err)
}

// setEnvVars clears every variable the config reads and sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range []string{
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
	} {
		// t.Setenv registers the restore, Unsetenv makes the variable absent
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
