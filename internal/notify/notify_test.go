// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// recordingSink captures messages and optionally fails.
type recordingSink struct {
	name       string
	msgs       []string
	sendErr    error
	cleanedUp  bool
	cleanupErr error
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(msg string) error {
	s.msgs = append(s.msgs, msg)
	return s.sendErr
}

func (s *recordingSink) Cleanup() error {
	s.cleanedUp = true
	return s.cleanupErr
}

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestHubSend(t *testing.T) {
	hub := NewHub(quiet())
	a := &recordingSink{name: "a"}
	b := &recordingSink{name: "b"}
	hub.Register(a)
	hub.Register(b)

	hub.Send("hello")

	for _, s := range []*recordingSink{a, b} {
		if len(s.msgs) != 1 || s.msgs[0] != "hello" {
			t.Errorf("sink %s msgs = %v, want [hello]", s.name, s.msgs)
		}
	}
}

func TestHubSendFailingSink(t *testing.T) {
	hub := NewHub(quiet())
	failing := &recordingSink{name: "failing", sendErr: errors.New("down")}
	healthy := &recordingSink{name: "healthy"}
	hub.Register(failing)
	hub.Register(healthy)

	hub.Send("msg")

	// A failing sink must not stop delivery to the others.
	if len(healthy.msgs) != 1 {
		t.Errorf("healthy sink msgs = %v, want delivery despite sibling failure", healthy.msgs)
	}
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub(quiet())
	ok := &recordingSink{name: "ok"}
	bad := &recordingSink{name: "bad", cleanupErr: errors.New("leak")}
	hub.Register(ok)
	hub.Register(bad)

	err := hub.Cleanup()
	if !ok.cleanedUp || !bad.cleanedUp {
		t.Error("Cleanup() skipped a sink")
	}
	if err == nil || !strings.Contains(err.Error(), "bad") {
		t.Errorf("Cleanup() error = %v, want the failing sink named", err)
	}

	// Sinks are released: a second cleanup is a no-op.
	if err := hub.Cleanup(); err != nil {
		t.Errorf("second Cleanup() error = %v, want nil", err)
	}
}

func TestMessages(t *testing.T) {
	t.Run("resolved from file", func(t *testing.T) {
		msg := ResolvedMessage("strategy", "MyStrat", "/p/my.cue")
		if !strings.Contains(msg, "MyStrat") || !strings.Contains(msg, "/p/my.cue") {
			t.Errorf("ResolvedMessage() = %q", msg)
		}
	})

	t.Run("resolved from built-ins", func(t *testing.T) {
		msg := ResolvedMessage("strategy", "SampleStrategy", "")
		if !strings.Contains(msg, "built-in") {
			t.Errorf("ResolvedMessage() = %q, want built-in provenance", msg)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		msg := AmbiguousMessage("strategy", "Dup", []string{"/a.cue", "/b.cue"})
		if !strings.Contains(msg, "/a.cue") || !strings.Contains(msg, "/b.cue") {
			t.Errorf("AmbiguousMessage() = %q, want both paths", msg)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		msg := LoadFailureMessage("/broken.cue", errors.New("syntax"))
		if !strings.Contains(msg, "/broken.cue") || !strings.Contains(msg, "syntax") {
			t.Errorf("LoadFailureMessage() = %q", msg)
		}
	})
}

func TestLogSink(t *testing.T) {
	var buf strings.Builder
	sink := NewLogSink(log.New(&buf))

	if sink.Name() != "log" {
		t.Errorf("Name() = %q", sink.Name())
	}
	if err := sink.Send("resolved fine"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !strings.Contains(buf.String(), "resolved fine") {
		t.Errorf("log output = %q, want the message", buf.String())
	}
	if err := sink.Cleanup(); err != nil {
		t.Errorf("Cleanup() error = %v", err)
	}
}
