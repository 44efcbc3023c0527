package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Listener is called synchronously with the new theme after every change.
type Listener func(Theme)

// Store holds the current preference. It reports Placeholder until Init resolves the
// real value; storage failures never surface to callers.
type Store struct {
	mu        sync.Mutex
	storage   Storage
	system    PreferenceSource
	logger    *slog.Logger
	current   Theme
	resolved  bool
	listeners map[int]Listener
	nextID    int
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func NewStore(storage Storage, system PreferenceSource, opts ...Option) *Store {
	if system == nil {
		system = NoPreference
	}
	s := &Store{
		storage:   storage,
		system:    system,
		logger:    slog.Default(),
		current:   Placeholder,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init resolves the preference: persisted value first, then the system source, then
// Placeholder. Subscribers are notified with the resolved value.
func (s *Store) Init() Theme {
	t := s.resolve()

	s.mu.Lock()
	s.current = t
	s.resolved = true
	listeners := s.snapshot()
	s.mu.Unlock()

	notify(listeners, t)
	return t
}

func (s *Store) resolve() Theme {
	if s.storage != nil {
		v, err := s.storage.Load(StorageKey)
		switch {
		case err == nil:
			if t, ok := Parse(v); ok {
				return t
			}
			s.logger.Debug("ignoring invalid persisted theme", "value", v)
		case !errors.Is(err, ErrNotFound):
			s.logger.Debug("theme storage unavailable", "error", err)
		}
	}
	if t, ok := s.system.Preferred(); ok && t.Valid() {
		return t
	}
	return Placeholder
}

// Theme returns the current value, or Placeholder before Init.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Resolved reports whether Init has completed.
func (s *Store) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Set stores t in memory, notifies subscribers, then persists it. Persistence
// errors are logged and otherwise ignored.
func (s *Store) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	s.mu.Lock()
	s.current = t
	s.resolved = true
	listeners := s.snapshot()
	s.mu.Unlock()

	notify(listeners, t)

	if s.storage != nil {
		if err := s.storage.Save(StorageKey, string(t)); err != nil {
			s.logger.Debug("theme not persisted", "theme", t, "error", err)
		}
	}
	return nil
}

// Toggle flips between dark and light and returns the new value.
func (s *Store) Toggle() Theme {
	next := s.Theme().Toggle()
	// next is always valid
	_ = s.Set(next)
	return next
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) snapshot() []Listener {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listeners[id])
	}
	return out
}

func notify(listeners []Listener, t Theme) {
	for _, l := range listeners {
		l(t)
	}
}
