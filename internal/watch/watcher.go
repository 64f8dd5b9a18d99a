// SPDX-License-Identifier: MPL-2.0

// Package watch provides file-watching with debounced re-scanning.
//
// It monitors plugin directories for changes to files matching glob
// patterns and invokes a callback after a configurable debounce period.
// Events within the debounce window are coalesced so the callback fires
// once with the full set of changed paths.
package watch

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay before firing the onChange callback after
// the last filesystem event. This allows rapid successive events (e.g., an
// editor writing then renaming a temp file) to coalesce into a single
// callback.
const defaultDebounce = 500 * time.Millisecond

// defaultPatterns selects plugin files when no patterns are configured.
var defaultPatterns = []string{"*.cue"}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Dirs are the plugin directories to monitor. Directories are
		// watched non-recursively, matching how plugin scanning works.
		// Missing directories are logged and skipped.
		Dirs []string

		// Patterns are doublestar-compatible glob patterns matched against
		// event file names. An empty slice means defaultPatterns.
		Patterns []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values fall back to
		// defaultDebounce.
		Debounce time.Duration

		// OnChange is called after the debounce window closes with the
		// deduplicated list of changed file paths. A nil callback is a
		// no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Logger receives watcher diagnostics. Nil means log.Default().
		Logger *log.Logger
	}

	// Watcher monitors plugin directories and fires a debounced callback
	// when matching files change. Run must be called exactly once; calling
	// it a second time returns an error.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		logger   *log.Logger
		patterns []string
		debounce time.Duration
		started  atomic.Bool
	}
)

// New creates a Watcher from the given Config. It initialises the
// underlying fsnotify watcher and registers every existing directory for
// monitoring.
func New(cfg Config) (*Watcher, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = defaultPatterns
	}
	// Validate all patterns eagerly so invalid globs fail at construction
	// time rather than silently failing to match at runtime.
	for _, pat := range patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("watch: invalid pattern %q: %w", pat, err)
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		logger:   logger,
		patterns: patterns,
		debounce: debounce,
	}

	added := 0
	for _, dir := range cfg.Dirs {
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			logger.Warn("not watching missing plugin directory", "dir", dir)
			continue
		}
		if addErr := fsw.Add(dir); addErr != nil {
			if closeErr := fsw.Close(); closeErr != nil {
				logger.Warn("close after init failure", "err", closeErr)
			}
			return nil, fmt.Errorf("watch: add directory %q: %w", dir, addErr)
		}
		added++
	}
	if added == 0 {
		if closeErr := fsw.Close(); closeErr != nil {
			logger.Warn("close after init failure", "err", closeErr)
		}
		return nil, fmt.Errorf("watch: none of the configured directories exist")
	}

	return w, nil
}

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates fatal watcher errors. Run must be called
// exactly once; a second call returns an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	// fire drains the pending set and invokes the OnChange callback. It
	// may be scheduled by time.AfterFunc after the context is cancelled,
	// so check ctx.Err() as a best-effort guard. The atomic skip-if-busy
	// guard prevents concurrent callback invocations when a re-scan takes
	// longer than the debounce period.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug("skipping re-scan (previous run still in progress)")
			// Schedule a retry so pending events are not permanently lost.
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("watch callback failed", "err", err)
			}
		}
	}

	// Ensure the timer is stopped and the fsnotify watcher closed on exit.
	// The timer is accessed under mu because the event loop writes it
	// under the same lock.
	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if closeErr := w.fsw.Close(); closeErr != nil {
			w.logger.Warn("close fsnotify", "err", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}

			if !w.matchesPatterns(evt.Name) {
				continue
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			w.logger.Warn("fsnotify error", "err", err)
		}
	}
}

// matchesPatterns reports whether the event path's base name matches at
// least one configured pattern.
func (w *Watcher) matchesPatterns(path string) bool {
	name := filepath.Base(path)
	for _, pat := range w.patterns {
		if matched, matchErr := doublestar.Match(pat, name); matchErr == nil && matched {
			return true
		}
	}
	return false
}

// DefaultPatterns returns a copy of the built-in watch patterns. Useful for
// tests and tooling that need to verify the default behaviour.
func DefaultPatterns() []string {
	out := make([]string, len(defaultPatterns))
	copy(out, defaultPatterns)
	return out
}
