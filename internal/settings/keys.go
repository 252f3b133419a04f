package settings

import (
	"fmt"
)

// ReadKey returns the value at section.key of the origin store converted to
// kind. Converted values are memoized per (origin, section, key, kind), so a
// later lookup of the same path with a different kind converts afresh.
//
// It fails with ErrKeyNotFound when the path does not exist and with
// ErrConversion when the value cannot be converted; failures are not cached.
func (m *Manager) ReadKey(section, key string, kind Kind, origin Origin) (any, error) {
	ck := cacheKey{origin: origin, section: section, key: key, kind: kind}
	m.logger.Debug().Stringer("key", ck).Stringer("kind", kind).Msg("read key")

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache[ck]; ok {
		return v, nil
	}

	raw, ok := m.storeFor(origin).lookup(section, key)
	if !ok {
		return nil, fmt.Errorf("%w: key %q not found in section %q of %s config",
			ErrKeyNotFound, key, section, origin.label())
	}

	v, err := convert(raw, kind)
	if err != nil {
		return nil, fmt.Errorf("read %s as %s: %w", ck, kind, err)
	}

	m.cache[ck] = v
	return v, nil
}

// SetKey stores value at section.key of the origin store, creating the
// section when absent. Cached conversions of that path are dropped and value
// itself is cached for raw lookups. When the existing section is not an
// object the failure is logged and reported and nothing changes.
func (m *Manager) SetKey(section, key string, value any, origin Origin) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.storeFor(origin)
	current, exists := target[section]
	if !exists {
		current = map[string]any{}
		target[section] = current
	}

	values, ok := current.(map[string]any)
	if !ok {
		m.logger.Error().
			Str("section", section).
			Str("key", key).
			Stringer("origin", origin).
			Msgf("section holds %T, not an object", current)
		m.console.Failure(fmt.Sprintf("Error setting key '%s' in section '%s' of %s config: section is not an object",
			key, section, origin.label()))
		return
	}

	values[key] = value

	for _, kind := range allKinds {
		delete(m.cache, cacheKey{origin: origin, section: section, key: key, kind: kind})
	}
	m.cache[cacheKey{origin: origin, section: section, key: key, kind: KindRaw}] = value
}

func readAs[T any](m *Manager, section, key string, kind Kind, origin Origin) (T, error) {
	var zero T

	v, err := m.ReadKey(section, key, kind, origin)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s.%s holds %T, not %T", ErrConversion, section, key, v, zero)
	}
	return t, nil
}

func (m *Manager) readFloat(section, key string, origin Origin) (float64, error) {
	v, err := m.ReadKey(section, key, KindFloat, origin)
	if err != nil {
		return 0, err
	}

	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("read %s.%s: %w", section, key, err)
	}
	return f, nil
}

// Get returns the raw value at section.key of the main configuration.
func (m *Manager) Get(section, key string) (any, error) {
	return m.ReadKey(section, key, KindRaw, OriginConfig)
}

// GetInt returns section.key of the main configuration as an int.
func (m *Manager) GetInt(section, key string) (int, error) {
	return readAs[int](m, section, key, KindInt, OriginConfig)
}

// GetFloat returns section.key of the main configuration as a float64.
// Only numeric values are accepted; strings are not parsed.
func (m *Manager) GetFloat(section, key string) (float64, error) {
	return m.readFloat(section, key, OriginConfig)
}

// GetBool returns the truthiness of section.key of the main configuration.
// Any non-empty string is true, including "false".
func (m *Manager) GetBool(section, key string) (bool, error) {
	return readAs[bool](m, section, key, KindBool, OriginConfig)
}

// GetList returns section.key of the main configuration as a list of
// strings, splitting comma-separated strings.
func (m *Manager) GetList(section, key string) ([]string, error) {
	return readAs[[]string](m, section, key, KindStringList, OriginConfig)
}

// GetDict returns the object at section.key of the main configuration.
func (m *Manager) GetDict(section, key string) (map[string]any, error) {
	return readAs[map[string]any](m, section, key, KindDict, OriginConfig)
}

// GetSite returns the raw value at section.key of the site configuration.
func (m *Manager) GetSite(section, key string) (any, error) {
	return m.ReadKey(section, key, KindRaw, OriginSite)
}

// GetSiteInt is GetInt for the site configuration.
func (m *Manager) GetSiteInt(section, key string) (int, error) {
	return readAs[int](m, section, key, KindInt, OriginSite)
}

// GetSiteFloat is GetFloat for the site configuration.
func (m *Manager) GetSiteFloat(section, key string) (float64, error) {
	return m.readFloat(section, key, OriginSite)
}

// GetSiteBool is GetBool for the site configuration.
func (m *Manager) GetSiteBool(section, key string) (bool, error) {
	return readAs[bool](m, section, key, KindBool, OriginSite)
}

// GetSiteList is GetList for the site configuration.
func (m *Manager) GetSiteList(section, key string) ([]string, error) {
	return readAs[[]string](m, section, key, KindStringList, OriginSite)
}

// GetSiteDict is GetDict for the site configuration.
func (m *Manager) GetSiteDict(section, key string) (map[string]any, error) {
	return readAs[map[string]any](m, section, key, KindDict, OriginSite)
}
