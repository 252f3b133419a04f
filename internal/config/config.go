// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Upstream locations of the canonical default configuration and of the
// remote site configuration.
const (
	DefaultConfigURL = "https://raw.githubusercontent.com/Arrowar/StreamingCommunity/refs/heads/main/config.json"
	DefaultSiteURL   = "https://api.npoint.io/e67633acc3816cc70132"

	DefaultFileName       = "config.json"
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "go-site-config"
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level bootstrap configuration of the
// siteconfig tool. It says where the managed JSON file lives and where the
// remote documents come from; it is populated by merging defaults,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Settings locates the managed configuration file and the remote
	// documents.
	Settings Settings `envPrefix:"SETTINGS_"`

	// Adapter holds outbound HTTP settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Action is the optional one-shot CLI operation. Flags only.
	Action Action
}

// Settings configures the configuration manager.
type Settings struct {
	// FileName is joined with BaseDir to form the managed file path.
	// Env: SETTINGS_FILE_NAME
	FileName string `env:"FILE_NAME"`

	// BaseDir is the directory holding FileName. Empty means the current
	// working directory.
	// Env: SETTINGS_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// DefaultURL serves the canonical default configuration, downloaded
	// when the local file is missing.
	// Env: SETTINGS_DEFAULT_URL
	DefaultURL string `env:"DEFAULT_URL"`

	// SiteURL serves the site configuration fetched on every load.
	// Env: SETTINGS_SITE_URL
	SiteURL string `env:"SITE_URL"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// RequestTimeout bounds each remote request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Action describes what the CLI does after loading.
type Action struct {
	// Get prints the value at section.key when set.
	Get KeyPath

	// FromSite makes Get read the site configuration.
	FromSite bool

	// Set assigns section.key=value in the main configuration and writes
	// the file when set.
	Set Assignment
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (later
// sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Settings: Settings{
			FileName:   DefaultFileName,
			DefaultURL: DefaultConfigURL,
			SiteURL:    DefaultSiteURL,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
