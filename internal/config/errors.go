package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSettingsConfigs indicates invalid manager settings
	// (for example, empty file name or a non-http URL).
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidActionConfigs indicates a contradictory CLI action
	// (for example, -get together with -set).
	ErrInvalidActionConfigs = errors.New("invalid action configuration")
)
