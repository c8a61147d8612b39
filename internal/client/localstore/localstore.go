// Package localstore is the client's local key–value persistence: one JSON
// file per key under the user config directory. It backs the app settings
// (which survive sign-out), the session token and the client instance id.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/capnote/capnote/internal/filex"
)

// ErrNotFound is returned by Load when the key was never saved.
var ErrNotFound = errors.New("localstore: key not found")

type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Open returns the default store under the user config directory
// (e.g. ~/.config/capnote).
func Open() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("user config dir: %w", err)
	}
	return New(filepath.Join(base, "capnote")), nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save marshals v as JSON and writes it under key, replacing any prior value.
func (s *Store) Save(key string, v any) error {
	if _, err := filex.EnsureDir(s.dir); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Load unmarshals the value stored under key into v.
func (s *Store) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
