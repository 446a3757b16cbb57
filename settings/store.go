package settings

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/scjalliance/procwatch/event"
)

// Store holds the current settings in memory and persists every change.
//
// Reads through Current never block. Changes are serialized by a single lock
// that also guards file access.
type Store struct {
	path   string
	logger event.Logger

	mutex   sync.Mutex // Held during updates and file access
	current atomic.Pointer[Settings]
}

// OpenStore loads the settings file at path and returns a store for it.
//
// If the file cannot be loaded a store holding the default settings is
// returned together with the error, so that the caller can report the
// problem and carry on.
func OpenStore(path string, logger event.Logger) (*Store, error) {
	s, err := Load(path)
	store := NewStore(path, s, logger)
	if err != nil {
		store.log("Load failed: %v", err)
		return store, err
	}
	store.debug("Loaded")
	return store, nil
}

// NewStore returns a store for path that starts with s. It does not touch
// the file system.
func NewStore(path string, s Settings, logger event.Logger) *Store {
	store := &Store{
		path:   path,
		logger: logger,
	}
	store.current.Store(&s)
	return store
}

// Path returns the path of the settings file.
func (store *Store) Path() string {
	return store.path
}

// Current returns a snapshot of the current settings.
func (store *Store) Current() Settings {
	return *store.current.Load()
}

// Update applies fn to a copy of the current settings and persists the
// result. The in-memory settings only change if the save succeeds.
//
// Update returns the settings in effect when it returns.
func (store *Store) Update(fn func(*Settings)) (Settings, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	prev := store.Current()
	next := prev
	fn(&next)
	next = next.Clamp().Exclusive()

	if next == prev {
		return prev, nil
	}

	if err := Save(store.path, next); err != nil {
		store.log("Save failed: %v", err)
		return prev, err
	}

	store.current.Store(&next)
	store.debug("Saved")
	return next, nil
}

// Toggle flips field f and persists the result.
func (store *Store) Toggle(f Field) (Settings, error) {
	return store.Update(func(s *Settings) {
		s.Set(f, !s.Get(f))
	})
}

// SetField assigns value to field f and persists the result.
func (store *Store) SetField(f Field, value bool) (Settings, error) {
	return store.Update(func(s *Settings) {
		s.Set(f, value)
	})
}

// SetTiming validates and persists a new check interval and alert duration.
func (store *Store) SetTiming(interval float64, duration int) (Settings, error) {
	if err := ValidateInterval(interval); err != nil {
		return store.Current(), err
	}
	if err := ValidateAlertDuration(duration); err != nil {
		return store.Current(), err
	}
	return store.Update(func(s *Settings) {
		s.CheckInterval = interval
		s.AlertDuration = duration
	})
}

// Reload reads the settings file again and publishes its content. It
// reports whether the settings changed.
func (store *Store) Reload() (changed bool, err error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	s, err := Load(store.path)
	if err != nil {
		return false, fmt.Errorf("reload failed: %w", err)
	}

	if s == store.Current() {
		return false, nil
	}

	store.current.Store(&s)
	store.log("Reloaded after external change")
	return true, nil
}

func (store *Store) log(format string, v ...interface{}) {
	if store.logger == nil {
		return
	}
	store.logger.Log(event.Settings{
		Path: store.path,
		Msg:  fmt.Sprintf(format, v...),
	})
}

func (store *Store) debug(format string, v ...interface{}) {
	if store.logger == nil {
		return
	}
	store.logger.Log(event.Settings{
		Path:  store.path,
		Msg:   fmt.Sprintf(format, v...),
		Debug: true,
	})
}
