package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// KeyPath addresses a single value as section.key.
// It implements the flag.Value interface.
type KeyPath struct {
	Section string
	Key     string
}

// Assignment is a KeyPath plus the raw text to store there.
// It implements the flag.Value interface.
type Assignment struct {
	Path  KeyPath
	Value string
}

// parseFlags parses all configuration flags from args (without the program
// name). Unset flags leave their fields zero so they do not override other
// sources when merged.
//
// Flags:
//
//	-file       managed config file name
//	-dir        directory holding the config file
//	-default-url URL of the default configuration
//	-site-url   URL of the site configuration
//	-timeout    remote request timeout (e.g., "30s", "1m")
//	-user-agent User-Agent header for remote requests
//	-log-level  log level (debug, info, warn, error)
//	-get        print the value at section.key
//	-site       read -get from the site configuration
//	-set        store section.key=value and write the file
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		fileName       string
		baseDir        string
		defaultURL     string
		siteURL        string
		requestTimeout time.Duration
		userAgent      string
		logLevel       string
		get            KeyPath
		fromSite       bool
		set            Assignment
	)

	fs := flag.NewFlagSet("siteconfig", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&fileName, "file", "", "Config file name")
	fs.StringVar(&baseDir, "dir", "", "Directory holding the config file")
	fs.StringVar(&defaultURL, "default-url", "", "Default configuration URL")
	fs.StringVar(&siteURL, "site-url", "", "Site configuration URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header for remote requests")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&get, "get", "Print value at section.key")
	fs.BoolVar(&fromSite, "site", false, "Read -get from the site configuration")
	fs.Var(&set, "set", "Store section.key=value and write the config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Settings: Settings{
			FileName:   fileName,
			BaseDir:    baseDir,
			DefaultURL: defaultURL,
			SiteURL:    siteURL,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Log: Log{
			Level: logLevel,
		},
		Action: Action{
			Get:      get,
			FromSite: fromSite,
			Set:      set,
		},
	}, nil
}

// String returns section.key, or an empty string for the zero KeyPath.
func (p *KeyPath) String() string {
	if p.Section == "" && p.Key == "" {
		return ""
	}

	return p.Section + "." + p.Key
}

// Set parses input of form section.key. The section is everything before
// the first dot; both parts must be non-empty.
func (p *KeyPath) Set(s string) error {
	section, key, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return errors.New("need key path in a form `section.key`")
	}
	if section == "" || key == "" {
		return errors.New("section and key must not be empty")
	}

	p.Section = section
	p.Key = key
	return nil
}

// IsZero reports whether no path was given.
func (p KeyPath) IsZero() bool {
	return p.Section == "" && p.Key == ""
}

// String returns section.key=value, or an empty string when unset.
func (a *Assignment) String() string {
	if a.Path.IsZero() {
		return ""
	}

	return a.Path.String() + "=" + a.Value
}

// Set parses input of form section.key=value. The value may be empty.
func (a *Assignment) Set(s string) error {
	path, value, ok := strings.Cut(s, "=")
	if !ok {
		return errors.New("need assignment in a form `section.key=value`")
	}

	var p KeyPath
	if err := p.Set(path); err != nil {
		return err
	}

	a.Path = p
	a.Value = value
	return nil
}

// Decoded returns the assigned value as JSON when it parses as a JSON
// document (numbers kept as json.Number), otherwise as the plain string.
func (a Assignment) Decoded() any {
	dec := json.NewDecoder(bytes.NewReader([]byte(a.Value)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return a.Value
	}
	return v
}
