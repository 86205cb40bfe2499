package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/boing/render"
)

var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting value")
	ErrMissing      = errors.New("setting not present")
	ErrMalformed    = errors.New("malformed settings file")
)

// Store is a flat key/value settings source
// Values are whatever the backing format produced: bool, int64, float64 or string
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any) error
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	values map[string]any
}

// NewMemoryStore creates a store seeded with values, which may be nil
func NewMemoryStore(values map[string]any) *MemoryStore {
	m := &MemoryStore{values: make(map[string]any, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key string, value any) error {
	if _, ok := lookupKind(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	m.values[key] = value
	return nil
}

// Bool reads key as a boolean, def on missing or invalid values
func Bool(s Store, key string, def bool) bool {
	v, err := lookupBool(s, key)
	if err != nil {
		return def
	}
	return v
}

// Int reads key as an integer, def on missing or invalid values
func Int(s Store, key string, def int) int {
	v, err := lookupInt(s, key)
	if err != nil {
		return def
	}
	return v
}

// Color reads key as a packed 0xRRGGBB color, def on missing or invalid values
func Color(s Store, key string, def uint32) uint32 {
	v, err := lookupColor(s, key)
	if err != nil {
		return def
	}
	return v
}

// String reads key as a string, def on missing or invalid values
func String(s Store, key string, def string) string {
	v, err := lookupString(s, key)
	if err != nil {
		return def
	}
	return v
}

func lookup(s Store, key string) (any, error) {
	v, ok := s.Get(key)
	if !ok {
		return nil, ErrMissing
	}
	return v, nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, v)
}

func lookupBool(s Store, key string) (bool, error) {
	raw, err := lookup(s, key)
	if err != nil {
		return false, err
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, invalid(key, v)
		}
		return b, nil
	}
	return false, invalid(key, raw)
}

func lookupInt(s Store, key string) (int, error) {
	raw, err := lookup(s, key)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, invalid(key, v)
		}
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalid(key, v)
		}
		return n, nil
	}
	return 0, invalid(key, raw)
}

// lookupColor accepts a packed integer, "#rrggbb", "#rgb" or "0xRRGGBB"
func lookupColor(s Store, key string) (uint32, error) {
	raw, err := lookup(s, key)
	if err != nil {
		return 0, err
	}
	var n int64
	switch v := raw.(type) {
	case int64:
		n = v
	case int:
		n = int64(v)
	case float64:
		n = int64(v)
		if float64(n) != v {
			return 0, invalid(key, v)
		}
	case string:
		return parseColor(key, v)
	default:
		return 0, invalid(key, raw)
	}
	if n < 0 || n > 0xFFFFFF {
		return 0, invalid(key, raw)
	}
	return uint32(n), nil
}

func parseColor(key, v string) (uint32, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		c, err := render.ParseHex(v)
		if err != nil {
			return 0, invalid(key, v)
		}
		return c.Packed(), nil
	}
	n, err := strconv.ParseUint(v, 0, 32)
	if err != nil || n > 0xFFFFFF {
		return 0, invalid(key, v)
	}
	return uint32(n), nil
}

func lookupString(s Store, key string) (string, error) {
	raw, err := lookup(s, key)
	if err != nil {
		return "", err
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case int64, int, float64, bool:
		return fmt.Sprint(v), nil
	}
	return "", invalid(key, raw)
}

// FormatColor renders a packed color as "#rrggbb"
func FormatColor(c uint32) string {
	return render.RGBFromPacked(c).Hex()
}
