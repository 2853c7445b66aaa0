package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

// Preference keys. Every durable value lives under a namespaced key so the
// store file stays greppable next to other dotfiles.
const (
	KeyTheme                = "inkwell.theme"
	KeyNewsletterSubscribed = "inkwell.newsletter_subscribed"
	KeyFirstVisit           = "inkwell.first_visit"
)

const storeVersion = "1.0"

// storeFile is the on-disk representation of the preference store.
type storeFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store persists user preferences between sessions as a small JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewStore creates a Store backed by the given path and loads any existing
// values from disk.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: storeVersion,
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, inkwellerrors.NewPrefsError("", fmt.Errorf("failed to create prefs directory: %w", err))
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Start empty if the file doesn't exist yet.
	}

	return s, nil
}

// DefaultPath returns the preference store location under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "inkwell", "prefs.json"), nil
}

// Load reads the store from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return inkwellerrors.NewPrefsError("", fmt.Errorf("failed to parse prefs: %w", err))
	}

	s.version = file.Version
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Save writes the store to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	file := storeFile{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return inkwellerrors.NewPrefsError("", fmt.Errorf("failed to marshal prefs: %w", err))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return inkwellerrors.NewPrefsError("", fmt.Errorf("failed to write prefs: %w", err))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return inkwellerrors.NewPrefsError("", fmt.Errorf("failed to replace prefs: %w", err))
	}

	return nil
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and persists the store.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		return inkwellerrors.NewPrefsError(key, err)
	}
	return nil
}

// Reset clears all stored preferences and persists the empty store.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return s.saveLocked()
}

// Theme returns the persisted theme preference, if any.
func (s *Store) Theme() (string, bool) {
	return s.Get(KeyTheme)
}

// SetTheme persists an explicit theme preference.
func (s *Store) SetTheme(value string) error {
	return s.Set(KeyTheme, value)
}

// NewsletterSubscribed reports whether the newsletter flag has been persisted.
func (s *Store) NewsletterSubscribed() bool {
	value, ok := s.Get(KeyNewsletterSubscribed)
	return ok && value == "true"
}

// SetNewsletterSubscribed persists the newsletter subscription flag.
func (s *Store) SetNewsletterSubscribed(subscribed bool) error {
	value := "false"
	if subscribed {
		value = "true"
	}
	return s.Set(KeyNewsletterSubscribed, value)
}

// FirstVisitSeen reports whether the first-visit flag has been persisted.
func (s *Store) FirstVisitSeen() bool {
	value, ok := s.Get(KeyFirstVisit)
	return ok && value == "true"
}

// MarkFirstVisitSeen persists the first-visit flag.
func (s *Store) MarkFirstVisitSeen() error {
	return s.Set(KeyFirstVisit, "true")
}
