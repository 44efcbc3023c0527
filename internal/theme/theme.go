// Package theme owns the light/dark preference: where it is persisted, how it is
// resolved on first use, and who is told when it changes.
package theme

import (
	"errors"
	"strings"
	"sync"
)

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

const (
	// StorageKey is the single persisted key holding the preference.
	StorageKey = "theme"

	// Placeholder is reported until the store is initialized, and is the fallback
	// when neither storage nor the system offers a preference.
	Placeholder = Dark
)

var (
	ErrInvalidTheme = errors.New("theme: invalid value")
	ErrNotFound     = errors.New("theme: no persisted value")
)

// Parse accepts exactly "dark" or "light".
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), true
	}
	return "", false
}

func (t Theme) Valid() bool {
	_, ok := Parse(string(t))
	return ok
}

func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Storage persists string values under a key. Load returns ErrNotFound when the key is unset.
type Storage interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// PreferenceSource reports the operating system's color-scheme preference, if known.
type PreferenceSource interface {
	Preferred() (Theme, bool)
}

type PreferenceFunc func() (Theme, bool)

func (f PreferenceFunc) Preferred() (Theme, bool) { return f() }

// NoPreference is a source that never knows.
var NoPreference = PreferenceFunc(func() (Theme, bool) { return "", false })

// ParseColorScheme reads a prefers-color-scheme value such as the
// Sec-CH-Prefers-Color-Scheme client hint, which may arrive quoted.
func ParseColorScheme(v string) (Theme, bool) {
	return Parse(strings.ToLower(strings.Trim(strings.TrimSpace(v), `"`)))
}

// MemoryStorage keeps values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Load(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStorage) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
