// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for retrieving remote
// configuration documents.
//
// The primary abstraction is [RemoteSource], which decouples the settings
// manager from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPRemoteSource]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404). Only 200 OK counts as success.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_source_mock.go -package=mock

// RemoteSource fetches configuration documents by URL.
type RemoteSource interface {
	// Download performs a GET request and returns the raw response body
	// verbatim when the server answers 200 OK.
	Download(ctx context.Context, url string) ([]byte, error)

	// FetchJSON performs a GET request and decodes the body as a JSON
	// object. Numbers are decoded as json.Number. A body that is not a JSON
	// object fails with ErrInvalidPayload.
	FetchJSON(ctx context.Context, url string) (map[string]any, error)
}
