// SPDX-License-Identifier: MPL-2.0

// Package notify fans resolution events out to registered sinks.
//
// The hub replaces a module-level "registered modules" list with an
// explicit value: it is constructed once at startup, sinks are registered
// on it, and it is passed to the components that emit events. Sinks are
// transport adapters (a logger today; a chat bot would be another); message
// assembly lives here so every sink sees the same text.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type (
	// Sink receives assembled notification messages.
	Sink interface {
		// Name identifies the sink in diagnostics.
		Name() string
		// Send delivers one message.
		Send(msg string) error
		// Cleanup releases sink resources at shutdown.
		Cleanup() error
	}

	// Hub dispatches messages to every registered sink. Registration
	// happens at startup; Send and Cleanup may be called from any
	// goroutine afterwards.
	Hub struct {
		logger *log.Logger

		mu    sync.Mutex
		sinks []Sink
	}
)

// NewHub creates an empty hub. A nil logger falls back to log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{logger: logger}
}

// Register adds a sink to the hub.
func (h *Hub) Register(s Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger.Debug("enabling notification sink", "sink", s.Name())
	h.sinks = append(h.sinks, s)
}

// Send delivers msg to every registered sink. A failing sink is logged and
// does not stop delivery to the others.
func (h *Hub) Send(msg string) {
	h.mu.Lock()
	sinks := make([]Sink, len(h.sinks))
	copy(sinks, h.sinks)
	h.mu.Unlock()

	for _, s := range sinks {
		if err := s.Send(msg); err != nil {
			h.logger.Warn("notification sink failed", "sink", s.Name(), "err", err)
		}
	}
}

// Cleanup stops all registered sinks and returns their joined errors.
func (h *Hub) Cleanup() error {
	h.mu.Lock()
	sinks := h.sinks
	h.sinks = nil
	h.mu.Unlock()

	var errs []error
	for _, s := range sinks {
		h.logger.Debug("cleaning up notification sink", "sink", s.Name())
		if err := s.Cleanup(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// ResolvedMessage assembles the message for a successful resolution.
func ResolvedMessage(typeLabel, name, path string) string {
	if path == "" {
		return fmt.Sprintf("Resolved %s %q from built-ins", typeLabel, name)
	}
	return fmt.Sprintf("Resolved %s %q from %s", typeLabel, name, path)
}

// AmbiguousMessage assembles the message for an ambiguous resolution.
func AmbiguousMessage(typeLabel, name string, paths []string) string {
	return fmt.Sprintf("Ambiguous %s %q: declared in %s",
		typeLabel, name, strings.Join(paths, ", "))
}

// LoadFailureMessage assembles the message for a plugin file that failed
// to load.
func LoadFailureMessage(path string, err error) string {
	return fmt.Sprintf("Skipped plugin file %s: %v", path, err)
}

// logSink forwards messages to a logger at info level.
type logSink struct {
	logger *log.Logger
}

// NewLogSink returns a sink that writes messages to logger.
func NewLogSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &logSink{logger: logger}
}

func (s *logSink) Name() string { return "log" }

func (s *logSink) Send(msg string) error {
	s.logger.Info(msg)
	return nil
}

func (s *logSink) Cleanup() error { return nil }
