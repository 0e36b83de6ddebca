package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"realtyhub/models"
)

// FileSessionStore keeps the session slots in a small JSON file. Writes go
// through a temporary file and a rename so the slots change all at once.
type FileSessionStore struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionStore returns a store backed by path. Intermediate
// directories are created on first save.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Path returns the backing file.
func (f *FileSessionStore) Path() string { return f.path }

func (f *FileSessionStore) Load() (models.Session, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("session file: read %q: %w", f.path, err)
	}

	var slots map[string]string
	if err := json.Unmarshal(data, &slots); err != nil {
		return models.Session{}, false, fmt.Errorf("session file: decode %q: %w", f.path, err)
	}
	s, ok := sessionFromSlots(slots)
	return s, ok, nil
}

func (f *FileSessionStore) Save(s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session file: create dir: %w", err)
	}
	data, err := json.MarshalIndent(slotsFromSession(s), "", "  ")
	if err != nil {
		return fmt.Errorf("session file: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("session file: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("session file: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session file: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("session file: replace %q: %w", f.path, err)
	}
	return nil
}

func (f *FileSessionStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session file: remove %q: %w", f.path, err)
	}
	return nil
}
