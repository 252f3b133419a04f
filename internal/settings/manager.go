package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-site-config/internal/adapter"
	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
)

// Console receives human-facing status lines.
type Console interface {
	Info(msg string)
	KeyValue(label, value string)
	Success(msg string)
	Warn(msg string)
	Failure(msg string)
}

// Manager holds the main and site configuration stores and the lookup cache.
// It is safe for concurrent use.
type Manager struct {
	cfg     config.Settings
	remote  adapter.RemoteSource
	console Console
	logger  *logger.Logger

	filePath string

	mu     sync.Mutex
	config Store
	site   Store
	cache  map[cacheKey]any
}

// New resolves the configuration file path and returns a Manager with empty
// stores. Nothing is read until Load.
//
// The path is cfg.FileName (default config.json) joined with cfg.BaseDir, or
// with the working directory when BaseDir is empty.
func New(cfg config.Settings, remote adapter.RemoteSource, console Console, log *logger.Logger) (*Manager, error) {
	fileName := cfg.FileName
	if fileName == "" {
		fileName = config.DefaultFileName
	}
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	path, err := filepath.Abs(filepath.Join(baseDir, fileName))
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	m := &Manager{
		cfg:      cfg,
		remote:   remote,
		console:  console,
		logger:   log.WithComponent("settings"),
		filePath: path,
		config:   Store{},
		site:     Store{},
		cache:    make(map[cacheKey]any),
	}

	m.console.KeyValue("Configuration file path:", path)
	m.logger.Debug().Str("path", path).Msg("configuration file path resolved")

	return m, nil
}

// FilePath returns the absolute path of the main configuration file.
func (m *Manager) FilePath() string {
	return m.filePath
}

// Load reads the main configuration file, downloading the default copy
// first when the file does not exist, and then fetches the site
// configuration.
//
// Read and parse failures are logged and reported, leave the stores as they
// were and skip the site fetch; Load then returns nil. The only error
// returned is a *FatalError when the default configuration cannot be
// downloaded or saved.
func (m *Manager) Load(ctx context.Context) error {
	m.logger.Info().Str("path", m.filePath).Msg("reading configuration file")

	if err := m.loadMain(ctx); err != nil {
		if errors.Is(err, ErrFatal) {
			return err
		}

		m.logger.Error().Err(err).Msg("error reading configuration file")
		m.console.Failure(fmt.Sprintf("Error reading configuration file: %v", err))
		return nil
	}

	m.fetchSiteConfig(ctx)

	m.console.Info("Configuration file processing complete.")
	return nil
}

func (m *Manager) loadMain(ctx context.Context) error {
	_, err := os.Stat(m.filePath)
	switch {
	case err == nil:
		store, err := readStoreFile(m.filePath)
		if err != nil {
			return err
		}
		m.replace(OriginConfig, store)
		m.console.Success("Configuration file loaded successfully.")

	case errors.Is(err, fs.ErrNotExist):
		m.console.Warn("Configuration file not found. Downloading...")
		if err = m.downloadDefault(ctx, m.cfg.DefaultURL, m.filePath); err != nil {
			return err
		}

		store, err := readStoreFile(m.filePath)
		if err != nil {
			return err
		}
		m.replace(OriginConfig, store)
		m.console.Success("Configuration file downloaded and saved.")

	default:
		return fmt.Errorf("stat %s: %w", m.filePath, err)
	}

	return nil
}

// downloadDefault saves the body served at url to dest verbatim. Every
// failure is fatal.
func (m *Manager) downloadDefault(ctx context.Context, url, dest string) error {
	m.logger.Info().Str("url", url).Str("dest", dest).Msg("downloading default configuration")

	body, err := m.remote.Download(ctx, url)
	if err == nil {
		err = os.WriteFile(dest, body, 0o644)
	}
	if err != nil {
		m.logger.Error().Err(err).Str("url", url).Str("dest", dest).Msg("failed to download default configuration")
		m.console.Failure(fmt.Sprintf("Failed to download %s: %v", filepath.Base(dest), err))
		return &FatalError{Op: "download default configuration", Err: err}
	}

	m.console.Success(fmt.Sprintf("Successfully downloaded %s.", filepath.Base(dest)))
	return nil
}

// fetchSiteConfig replaces the site store with the document served at the
// site URL. On failure the site store is left untouched.
func (m *Manager) fetchSiteConfig(ctx context.Context) {
	m.console.Info("Fetching SITE data from API...")

	doc, err := m.remote.FetchJSON(ctx, m.cfg.SiteURL)
	if err != nil {
		m.logger.Warn().Err(err).Str("url", m.cfg.SiteURL).Msg("failed to fetch site configuration")
		m.console.Failure(fmt.Sprintf("Failed to fetch SITE data: %v", err))
		return
	}

	m.replace(OriginSite, Store(doc))
	m.console.Success("SITE data successfully fetched.")
}

// Write serialises the main store to the configuration file with a
// four-space indent. The site store is never written. Failures are logged
// and reported only.
func (m *Manager) Write() {
	m.mu.Lock()
	data, err := encodeStore(m.config)
	m.mu.Unlock()

	if err == nil {
		err = os.WriteFile(m.filePath, data, 0o644)
	}
	if err != nil {
		m.logger.Error().Err(err).Str("path", m.filePath).Msg("error writing configuration file")
		m.console.Failure(fmt.Sprintf("Error writing configuration file: %v", err))
		return
	}

	m.logger.Debug().Str("path", m.filePath).Int("bytes", len(data)).Msg("configuration file written")
}

// replace swaps the whole store of origin and drops its cached values.
func (m *Manager) replace(origin Origin, s Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if origin == OriginSite {
		m.site = s
	} else {
		m.config = s
	}

	for k := range m.cache {
		if k.origin == origin {
			delete(m.cache, k)
		}
	}
}

func (m *Manager) storeFor(origin Origin) Store {
	if origin == OriginSite {
		return m.site
	}
	return m.config
}
