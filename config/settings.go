package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/lixenwraith/boing/display"
)

// Default values
const (
	DefaultBackgroundColor  uint32 = 0xC0C0C0
	DefaultGeometryMode            = 1
	DefaultMultiMonitorMode        = 0
	DefaultDisplays                = "1x1"
	DefaultColorMode               = "auto"
)

// Settings is the resolved, validated configuration
type Settings struct {
	FloorShadow      bool
	WallShadow       bool
	Grid             bool
	Sound            bool
	BackgroundColor  uint32
	GeometryMode     int
	BallLighting     bool
	MultiMonitorMode int
	Displays         string
	ColorMode        string
}

// Defaults returns the settings used when nothing is stored
func Defaults() Settings {
	return Settings{
		FloorShadow:      true,
		WallShadow:       true,
		Grid:             true,
		Sound:            true,
		BackgroundColor:  DefaultBackgroundColor,
		GeometryMode:     DefaultGeometryMode,
		BallLighting:     true,
		MultiMonitorMode: DefaultMultiMonitorMode,
		Displays:         DefaultDisplays,
		ColorMode:        DefaultColorMode,
	}
}

// Load resolves every key from s, falling back per key to defaults
// Present but unusable values are logged
func Load(s Store) Settings {
	out := Defaults()

	loadBool(s, KeyFloorShadow, &out.FloorShadow)
	loadBool(s, KeyWallShadow, &out.WallShadow)
	loadBool(s, KeyGrid, &out.Grid)
	loadBool(s, KeySound, &out.Sound)
	loadBool(s, KeyBallLighting, &out.BallLighting)

	if c, err := lookupColor(s, KeyBackgroundColor); err == nil {
		out.BackgroundColor = c
	} else {
		logFallback(KeyBackgroundColor, err)
	}

	loadIntRange(s, KeyGeometryMode, 0, 1, &out.GeometryMode)
	loadIntRange(s, KeyMultiMonitorMode, 0, 3, &out.MultiMonitorMode)

	if v, err := lookupString(s, KeyDisplays); err == nil {
		if d, perr := display.ParseDims(v); perr == nil {
			out.Displays = d.String()
		} else {
			logFallback(KeyDisplays, perr)
		}
	} else {
		logFallback(KeyDisplays, err)
	}

	if v, err := lookupString(s, KeyColorMode); err == nil {
		out.ColorMode = strings.ToLower(strings.TrimSpace(v))
	} else {
		logFallback(KeyColorMode, err)
	}

	return out
}

func loadBool(s Store, key string, dst *bool) {
	v, err := lookupBool(s, key)
	if err != nil {
		logFallback(key, err)
		return
	}
	*dst = v
}

func loadIntRange(s Store, key string, lo, hi int, dst *int) {
	v, err := lookupInt(s, key)
	if err != nil {
		logFallback(key, err)
		return
	}
	if v < lo || v > hi {
		logFallback(key, invalid(key, v))
		return
	}
	*dst = v
}

func logFallback(key string, err error) {
	if errors.Is(err, ErrMissing) {
		return
	}
	log.Printf("config: %v, using default for %s", err, key)
}

// Save writes every field of st into s
func (st Settings) Save(s Store) error {
	for _, e := range st.Entries() {
		v, err := parseValue(e.Key, e.Value)
		if err != nil {
			return err
		}
		if err := s.Set(e.Key, v); err != nil {
			return err
		}
	}
	return nil
}

// Entry is one printable key/value pair
type Entry struct {
	Key   string
	Value string
}

// Entries lists settings in display order with their textual values
func (st Settings) Entries() []Entry {
	return []Entry{
		{KeyFloorShadow, strconv.FormatBool(st.FloorShadow)},
		{KeyWallShadow, strconv.FormatBool(st.WallShadow)},
		{KeyGrid, strconv.FormatBool(st.Grid)},
		{KeySound, strconv.FormatBool(st.Sound)},
		{KeyBackgroundColor, FormatColor(st.BackgroundColor)},
		{KeyGeometryMode, strconv.Itoa(st.GeometryMode)},
		{KeyBallLighting, strconv.FormatBool(st.BallLighting)},
		{KeyMultiMonitorMode, strconv.Itoa(st.MultiMonitorMode)},
		{KeyDisplays, st.Displays},
		{KeyColorMode, st.ColorMode},
	}
}

// SetRaw parses "Key=Value" and stores the typed value in s
// Keys match case-insensitively, values are validated against the key's type
func SetRaw(s Store, assignment string) error {
	name, raw, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("%w: expected Key=Value, got %q", ErrInvalidValue, assignment)
	}
	key, ok := canonicalKey(strings.TrimSpace(name))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.TrimSpace(name))
	}
	v, err := parseValue(key, strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	return s.Set(key, v)
}

// parseValue converts text to the stored representation for key
func parseValue(key, raw string) (any, error) {
	k, ok := lookupKind(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	switch k {
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, invalid(key, raw)
		}
		return b, nil
	case kindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalid(key, raw)
		}
		switch key {
		case KeyGeometryMode:
			if n < 0 || n > 1 {
				return nil, invalid(key, raw)
			}
		case KeyMultiMonitorMode:
			if n < 0 || n > 3 {
				return nil, invalid(key, raw)
			}
		}
		return n, nil
	case kindColor:
		c, err := parseColor(key, raw)
		if err != nil {
			return nil, err
		}
		return FormatColor(c), nil
	default:
		if key == KeyDisplays {
			d, err := display.ParseDims(raw)
			if err != nil {
				return nil, invalid(key, raw)
			}
			return d.String(), nil
		}
		return raw, nil
	}
}
