package config

import (
	"strings"
	"unicode"
)

// Setting keys, names match the persisted store
const (
	KeyFloorShadow      = "FloorShadow"
	KeyWallShadow       = "WallShadow"
	KeyGrid             = "Grid"
	KeySound            = "Sound"
	KeyBackgroundColor  = "BackgroundColor"
	KeyGeometryMode     = "GeometryMode"
	KeyBallLighting     = "BallLighting"
	KeyMultiMonitorMode = "MultiMonitorMode"
	KeyDisplays         = "Displays"
	KeyColorMode        = "ColorMode"
)

// kind is the value type a key holds
type kind uint8

const (
	kindBool kind = iota
	kindInt
	kindColor
	kindString
)

// keyKinds lists every known key, in display order
var keyKinds = []struct {
	key  string
	kind kind
}{
	{KeyFloorShadow, kindBool},
	{KeyWallShadow, kindBool},
	{KeyGrid, kindBool},
	{KeySound, kindBool},
	{KeyBackgroundColor, kindColor},
	{KeyGeometryMode, kindInt},
	{KeyBallLighting, kindBool},
	{KeyMultiMonitorMode, kindInt},
	{KeyDisplays, kindString},
	{KeyColorMode, kindString},
}

// Keys returns all known setting keys in display order
func Keys() []string {
	out := make([]string, len(keyKinds))
	for i, k := range keyKinds {
		out[i] = k.key
	}
	return out
}

func lookupKind(key string) (kind, bool) {
	for _, k := range keyKinds {
		if k.key == key {
			return k.kind, true
		}
	}
	return 0, false
}

// canonicalKey matches key case-insensitively against the known keys
func canonicalKey(key string) (string, bool) {
	for _, k := range keyKinds {
		if strings.EqualFold(k.key, key) {
			return k.key, true
		}
	}
	return "", false
}

// EnvName converts a key to its environment variable, FloorShadow -> BOING_FLOOR_SHADOW
func EnvName(key string) string {
	var b strings.Builder
	b.WriteString(EnvPrefix)
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
