// Package prefs persists the single user preference wheelhouse keeps:
// the content language. One key, one file, read once at startup and
// written through on every explicit switch.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

// Language selects the content deck translation.
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

// DefaultLanguage applies when no preference has been stored.
const DefaultLanguage = LanguageEnglish

// ParseLanguage validates a stored or incoming language value.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageGerman:
		return LanguageGerman, true
	case LanguageEnglish:
		return LanguageEnglish, true
	}
	return "", false
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageGerman {
		return LanguageEnglish
	}
	return LanguageGerman
}

type fileFormat struct {
	Language string `json:"language"`
}

// Store reads and writes the preference file.
type Store struct {
	path string

	mu   sync.Mutex
	lang Language
}

// NewStore creates a store bound to the given path.
func NewStore(path string) *Store {
	return &Store{path: path, lang: DefaultLanguage}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the preference once. A missing file or an unrecognized
// value falls back to the default; only genuine I/O or syntax problems
// are reported, and even those leave the default in place.
func (s *Store) Load() (Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.lang = DefaultLanguage
			return s.lang, nil
		}
		s.lang = DefaultLanguage
		return s.lang, fmt.Errorf("read preferences: %w", err)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		s.lang = DefaultLanguage
		return s.lang, fmt.Errorf("parse preferences: %w", err)
	}
	lang, ok := ParseLanguage(f.Language)
	if !ok {
		lang = DefaultLanguage
	}
	s.lang = lang
	return s.lang, nil
}

// Get returns the current preference.
func (s *Store) Get() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Set updates the preference and writes it through.
func (s *Store) Set(lang Language) error {
	if _, ok := ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("unknown language %q", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preference directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(fileFormat{Language: string(lang)}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// apply updates the in-memory value without writing, used when the
// change originated on disk.
func (s *Store) apply(lang Language) {
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}
