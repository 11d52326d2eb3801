// Package prefs persists small user preferences (currently the theme) as a
// key/value document that survives restarts.
package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ErrNotFound is returned by Get when the key has never been stored.
var ErrNotFound = errors.New("preference not found")

const fileVersion = "1.0"

// Store is a string key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// fileDocument is the on-disk layout.
type fileDocument struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// File is a Store backed by a JSON document. The document is read lazily on
// first access and rewritten atomically on every Set.
type File struct {
	path string

	mu      sync.RWMutex
	loaded  bool
	loadErr error
	values  map[string]string
}

// NewFile returns a store for the document at path. Nothing is read until
// the first Get or Set.
func NewFile(path string) *File {
	return &File{path: path, values: make(map[string]string)}
}

// Path returns the backing file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) ensureLoaded() {
	if f.loaded {
		return
	}
	f.loaded = true

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.loadErr = apperrors.NewStorageError("read", f.path, err)
		}
		return
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		f.loadErr = apperrors.NewStorageError("decode", f.path, err)
		return
	}
	if doc.Values != nil {
		f.values = doc.Values
	}
}

// Get returns the stored value. A missing key yields ErrNotFound; an
// unreadable or corrupt document yields a *errors.StorageError.
func (f *File) Get(key string) (string, error) {
	f.mu.Lock()
	f.ensureLoaded()
	f.mu.Unlock()

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.loadErr != nil {
		return "", f.loadErr
	}
	value, ok := f.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores value under key and writes the whole document to disk. On a
// write failure the in-memory value is kept.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ensureLoaded()
	f.values[key] = value

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return apperrors.NewStorageError("mkdir", f.path, err)
	}

	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Values: f.values}, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("encode", f.path, err)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return apperrors.NewStorageError("write", f.path, err)
	}

	// A successful rewrite supersedes any earlier corrupt read.
	f.loadErr = nil
	return nil
}

// Memory is an in-process Store, used when no preferences file is available.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// DefaultPath returns the preferences file location under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".folio", "preferences.json"), nil
}

var (
	_ Store = (*File)(nil)
	_ Store = (*Memory)(nil)
)
