package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/utils"
)

type httpRemoteSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteSource constructs an HTTP implementation of [RemoteSource].
// Requests use the timeout and User-Agent from adapterCfg; a zero timeout
// means requests are bounded only by their context.
func NewHTTPRemoteSource(adapterCfg config.Adapter, log *logger.Logger) RemoteSource {
	return &httpRemoteSource{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.UserAgent),
		logger: log.WithComponent("adapter"),
	}
}

// Download implements [RemoteSource].
func (h *httpRemoteSource) Download(ctx context.Context, url string) ([]byte, error) {
	body, err := h.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	return body, nil
}

// FetchJSON implements [RemoteSource].
func (h *httpRemoteSource) FetchJSON(ctx context.Context, url string) (map[string]any, error) {
	body, err := h.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", url, ErrInvalidPayload, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode %s: %w: expected JSON object, got %T", url, ErrInvalidPayload, doc)
	}

	return obj, nil
}

func (h *httpRemoteSource) get(ctx context.Context, url string) ([]byte, error) {
	h.logger.Debug().Str("url", url).Msg("GET")

	resp, err := h.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	h.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
