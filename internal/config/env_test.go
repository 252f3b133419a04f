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
	envVars := map[string]string{
		"SETTINGS_FILE_NAME":   "custom.json",
		"SETTINGS_BASE_DIR":    "/etc/siteconfig",
		"SETTINGS_DEFAULT_URL": "https://example.com/default.json",
		"SETTINGS_SITE_URL":    "https://example.com/site.json",

		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_USER_AGENT":      "agent/1.0",

		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.Settings.FileName)
	assert.Equal(t, "/etc/siteconfig", cfg.Settings.BaseDir)
	assert.Equal(t, "https://example.com/default.json", cfg.Settings.DefaultURL)
	assert.Equal(t, "https://example.com/site.json", cfg.Settings.SiteURL)

	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "agent/1.0", cfg.Adapter.UserAgent)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SETTINGS_FILE_NAME": "partial.json",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "partial.json", cfg.Settings.FileName)
	assert.Empty(t, cfg.Settings.BaseDir)
	assert.Empty(t, cfg.Settings.SiteURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{name: "seconds", envValue: "45s", expected: 45 * time.Second},
		{name: "minutes", envValue: "2m", expected: 2 * time.Minute},
		{name: "milliseconds", envValue: "1500ms", expected: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"SETTINGS_FILE_NAME",
		"SETTINGS_BASE_DIR",
		"SETTINGS_DEFAULT_URL",
		"SETTINGS_SITE_URL",

		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_USER_AGENT",

		"LOG_LEVEL",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v) // registers restore on cleanup
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
