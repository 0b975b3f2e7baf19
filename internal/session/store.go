// Package session replaces browser local storage with an explicit session
// context: token, user and language preference persisted as one JSON file,
// loaded at startup and cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"dzbooking/internal/models"
)

const stateFile = "session.json"

// DefaultLanguage is Arabic, matching the platform's primary market.
const DefaultLanguage = "ar"

type state struct {
	Token    string       `json:"token,omitempty"`
	User     *models.User `json:"user,omitempty"`
	Language string       `json:"language,omitempty"`
}

// Store owns the persisted session state. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	st   state
}

// Open loads the session state from dir, creating the directory if needed.
// A missing state file is not an error; it yields an anonymous session.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	s := &Store{path: filepath.Join(dir, stateFile)}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session state: %w", err)
	}
	if err := json.Unmarshal(raw, &s.st); err != nil {
		// Corrupt state falls back to anonymous rather than blocking startup.
		s.st = state{}
	}
	return s, nil
}

// SetSession stores the token and user after a successful login or register.
func (s *Store) SetSession(token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Token = token
	s.st.User = &user
	return s.flush()
}

// Clear drops token and user on logout. The language preference survives.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Token = ""
	s.st.User = nil
	return s.flush()
}

// Token returns the bearer token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Token
}

// User returns the session user, if authenticated.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.User == nil {
		return models.User{}, false
	}
	return *s.st.User, true
}

// Authenticated reports whether a session user is present.
func (s *Store) Authenticated() bool {
	_, ok := s.User()
	return ok
}

// Language returns the stored preference, defaulting to Arabic.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.Language == "" {
		return DefaultLanguage
	}
	return s.st.Language
}

// SetLanguage persists the language preference.
func (s *Store) SetLanguage(lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Language = lang
	return s.flush()
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
