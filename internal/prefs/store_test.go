package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "prefs.json"))
}

func TestLoadMissingFileDefaults(t *testing.T) {
	s := tempStore(t)
	lang, err := s.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if lang != DefaultLanguage {
		t.Fatalf("expected default %q, got %q", DefaultLanguage, lang)
	}
}

func TestSetWritesThrough(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(LanguageGerman); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if s.Get() != LanguageGerman {
		t.Fatalf("expected in-memory update, got %q", s.Get())
	}

	reopened := NewStore(s.Path())
	lang, err := reopened.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if lang != LanguageGerman {
		t.Fatalf("expected persisted %q, got %q", LanguageGerman, lang)
	}
}

func TestSetRejectsUnknownLanguage(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(Language("fr")); err == nil {
		t.Fatalf("expected rejection of unknown language")
	}
}

func TestLoadUnknownValueFallsBack(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"language":"xx"}`), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	lang, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != DefaultLanguage {
		t.Fatalf("expected fallback to default, got %q", lang)
	}
}

func TestLoadMalformedFileReportsAndDefaults(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	lang, err := s.Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if lang != DefaultLanguage {
		t.Fatalf("expected default despite error, got %q", lang)
	}
}

func TestToggle(t *testing.T) {
	if LanguageEnglish.Toggle() != LanguageGerman {
		t.Fatalf("expected en -> de")
	}
	if LanguageGerman.Toggle() != LanguageEnglish {
		t.Fatalf("expected de -> en")
	}
}

func TestWatcherObservesExternalWrite(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(LanguageEnglish); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	w, err := NewWatcher(s)
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(s.Path(), []byte(`{"language":"de"}`+"\n"), 0o644); err != nil {
		t.Fatalf("external write failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for preference event")
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatalf("events channel closed early")
			}
			if ev.Err != nil {
				t.Fatalf("unexpected watch error: %v", ev.Err)
			}
			if ev.Language == LanguageGerman {
				if s.Get() != LanguageGerman {
					t.Fatalf("store not updated from disk")
				}
				return
			}
		}
	}
}
