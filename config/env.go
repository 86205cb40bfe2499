package config

import "os"

// EnvPrefix is prepended to upper snake-case keys to form override variables
const EnvPrefix = "BOING_"

// EnvStore layers environment overrides over a base store
// Reads prefer a non-empty BOING_<KEY> variable, writes go to the base
type EnvStore struct {
	base   Store
	lookup func(string) (string, bool)
}

// NewEnvStore wraps base with process environment overrides
func NewEnvStore(base Store) *EnvStore {
	return &EnvStore{base: base, lookup: os.LookupEnv}
}

func (e *EnvStore) Get(key string) (any, bool) {
	if v, ok := e.lookup(EnvName(key)); ok && v != "" {
		return v, true
	}
	return e.base.Get(key)
}

func (e *EnvStore) Set(key string, value any) error {
	return e.base.Set(key, value)
}
