// Package config provides bootstrap configuration loading, merging, and
// validation for the siteconfig tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The managed JSON document
// itself is handled by package settings.
package config
