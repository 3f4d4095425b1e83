// Package storage provides the dashboard's durable key-value state
// store: a small JSON file holding the persisted theme mode and the
// pre-paint variable cache, with change notifications for other
// processes sharing the same file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Reserved keys. They match the browser-side localStorage keys the
// served bootstrap script reads, so the CLI, the server and the page
// all describe the same state.
const (
	KeyMode      = "theme"
	KeyVarsCache = "theme-vars-cache"
)

const filePerm = 0o600

// Store is a synchronous key-value store backed by a single JSON file.
// Every call re-reads the file, so concurrent processes always observe
// the latest committed state.
type Store struct {
	mu   sync.Mutex
	path string

	// skipNextEvent suppresses the watch notification triggered by this
	// store's own Set/Delete, mirroring the skip-own-save pattern of the
	// config watcher. Guarded by mu.
	skipNextEvent bool
}

// New creates a store for the given state file. The file may not exist
// yet; it is created on first Set.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key. The second return value is false when
// the key is absent. Read failures are returned so callers can fall
// back to defaults.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := state[key]
	return v, ok, nil
}

// Set writes key=value atomically (temp file + rename). A notification
// for this write is suppressed on this store's own watcher.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	if state[key] == value {
		return nil
	}
	state[key] = value
	return s.write(state)
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := state[key]; !ok {
		return nil
	}
	delete(state, key)
	return s.write(state)
}

// Snapshot returns a copy of the full state map.
func (s *Store) Snapshot() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// read loads the state file. A missing file yields an empty state.
// Caller must hold mu.
func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	state := map[string]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return state, nil
}

// write commits the state atomically. Caller must hold mu.
func (s *Store) write(state map[string]string) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod state file: %w", err)
	}

	s.skipNextEvent = true
	if err := os.Rename(tmpName, s.path); err != nil {
		s.skipNextEvent = false
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit state file: %w", err)
	}
	return nil
}

// consumeSelfWrite reports whether the next watch event originates from
// this store's own write, clearing the flag.
func (s *Store) consumeSelfWrite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	skip := s.skipNextEvent
	s.skipNextEvent = false
	return skip
}
