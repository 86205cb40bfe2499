package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName names the settings directory under the user config dir
const AppName = "boing"

// DefaultPath returns <user config dir>/boing/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// FileStore is a Store persisted as a flat TOML table
type FileStore struct {
	path   string
	values map[string]any
}

// OpenFileStore loads path into a new store
// A missing file yields an empty store. A malformed file also yields an empty,
// usable store together with an error wrapping ErrMalformed
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]any),
	}

	if _, err := toml.DecodeFile(path, &s.values); err != nil {
		s.values = make(map[string]any)
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set updates key in memory, Save persists it
func (s *FileStore) Set(key string, value any) error {
	if _, ok := lookupKind(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	s.values[key] = value
	return nil
}

// Reset clears every key so defaults apply
func (s *FileStore) Reset() {
	s.values = make(map[string]any)
}

// Save writes the store to its path, creating parent directories
// The file is replaced atomically via rename
func (s *FileStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(s.values); err != nil {
		tmp.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
