// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable before
// the configuration manager is built.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Settings.FileName) == "" {
		return fmt.Errorf("%w: empty file name", ErrInvalidSettingsConfigs)
	}
	if err := validateURL(cfg.Settings.DefaultURL); err != nil {
		return fmt.Errorf("%w: default url: %w", ErrInvalidSettingsConfigs, err)
	}
	if err := validateURL(cfg.Settings.SiteURL); err != nil {
		return fmt.Errorf("%w: site url: %w", ErrInvalidSettingsConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if !cfg.Action.Get.IsZero() && !cfg.Action.Set.Path.IsZero() {
		return fmt.Errorf("%w: -get and -set are mutually exclusive", ErrInvalidActionConfigs)
	}
	if cfg.Action.FromSite && cfg.Action.Get.IsZero() {
		return fmt.Errorf("%w: -site requires -get", ErrInvalidActionConfigs)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
