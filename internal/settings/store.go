package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Store maps section names to section values. Sections holding key/value
// pairs are map[string]any; leaves are decoded JSON values with numbers kept
// as json.Number.
type Store map[string]any

// lookup returns the value at section.key.
func (s Store) lookup(section, key string) (any, bool) {
	values, ok := s[section].(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := values[key]
	return v, ok
}

// Origin selects which store an operation targets.
type Origin int

const (
	OriginConfig Origin = iota
	OriginSite
)

// String returns the cache prefix of the origin: "config" or "site".
func (o Origin) String() string {
	if o == OriginSite {
		return "site"
	}
	return "config"
}

func (o Origin) label() string {
	if o == OriginSite {
		return "site"
	}
	return "main"
}

// cacheKey memoizes converted values per origin, path and requested kind.
type cacheKey struct {
	origin  Origin
	section string
	key     string
	kind    Kind
}

// String returns the composite form origin.section.key.
func (k cacheKey) String() string {
	return k.origin.String() + "." + k.section + "." + k.key
}

func decodeStore(data []byte) (Store, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, not an object", ErrMalformedConfig, doc)
	}

	return Store(obj), nil
}

func readStoreFile(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	store, err := decodeStore(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return store, nil
}

func encodeStore(s Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
