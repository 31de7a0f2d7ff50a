// Package app bootstraps the deck browser: preference storage, the
// change watcher, and the Bubble Tea program.
package app

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixfold/wheelhouse/internal/logging"
	"github.com/sixfold/wheelhouse/internal/logging/events"
	"github.com/sixfold/wheelhouse/internal/prefs"
	"github.com/sixfold/wheelhouse/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	LangFile      string
	Cooldown      time.Duration
	Transition    time.Duration
	ReducedMotion bool
	NarrowWidth   int
	ShowFooter    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store := prefs.NewStore(resolveLangFile(cfg.LangFile))
	lang, err := store.Load()
	if err != nil {
		// A broken preference file is not fatal; the default language
		// applies and the next explicit switch rewrites it.
		logging.Error(err)
		events.Prefs.Error(err)
	}
	events.Prefs.Loaded(string(lang), store.Path())

	watcher := startWatcher(store)
	if watcher != nil {
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	model := ui.NewModel(ui.Options{
		Language:      lang,
		Cooldown:      cfg.Cooldown,
		Transition:    cfg.Transition,
		ReducedMotion: cfg.ReducedMotion,
		NarrowWidth:   cfg.NarrowWidth,
		ShowFooter:    cfg.ShowFooter,
		Store:         store,
		Watcher:       watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func startWatcher(store *prefs.Store) *prefs.Watcher {
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		logging.Error(err)
		return nil
	}
	watcher, err := prefs.NewWatcher(store)
	if err != nil {
		// Live reload is a convenience; run without it.
		logging.Error(err)
		return nil
	}
	return watcher
}

func resolveLangFile(path string) string {
	if path != "" {
		return path
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wheelhouse", "prefs.json")
	}
	return "wheelhouse-prefs.json"
}
