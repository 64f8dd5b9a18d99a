// SPDX-License-Identifier: MPL-2.0

package strategy

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/internal/testutil"
)

// testConfig builds a config whose search path is a single temp directory,
// with the cwd moved away from any real user_data tree.
func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	restore := testutil.MustChdir(t, t.TempDir())
	t.Cleanup(restore)

	userData := t.TempDir()
	cfg := &config.Config{UserDataDir: userData}
	return cfg, filepath.Join(userData, "strategies")
}

func quiet() resolver.Option {
	return resolver.WithLogger(log.New(io.Discard))
}

func TestLoadFromFile(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "awesome.cue"), `
MyAwesomeStrategy: {
	extends: "Strategy"
	description: "buys low, sells high"
	spec: {
		timeframe: "1h"
		stoploss: -0.05
		minimal_roi: {
			"0":  0.10
			"30": 0.05
		}
		attributes: {
			can_short: true
		}
	}
}
`)

	res, err := Load(cfg, "MyAwesomeStrategy", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Builtin() {
		t.Error("Builtin() = true, want file provenance")
	}

	s := res.Instance
	if s.Name() != "MyAwesomeStrategy" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.Timeframe() != "1h" {
		t.Errorf("Timeframe() = %q, want 1h", s.Timeframe())
	}
	if s.Stoploss() != -0.05 {
		t.Errorf("Stoploss() = %v, want -0.05", s.Stoploss())
	}
	if roi := s.MinimalROI(); roi["30"] != 0.05 {
		t.Errorf("MinimalROI() = %v", roi)
	}

	d, ok := s.(*Declared)
	if !ok {
		t.Fatalf("instance type = %T, want *Declared", s)
	}
	if v, ok := d.Attribute("can_short"); !ok || v != true {
		t.Errorf("Attribute(can_short) = (%v, %t)", v, ok)
	}
}

func TestLoadSchemaDefaults(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "minimal.cue"), `
Minimal: {
	extends: "Strategy"
	spec: {}
}
`)

	res, err := Load(cfg, "Minimal", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s := res.Instance
	if s.Timeframe() != "5m" {
		t.Errorf("Timeframe() = %q, want default 5m", s.Timeframe())
	}
	if s.Stoploss() != -0.10 {
		t.Errorf("Stoploss() = %v, want default -0.10", s.Stoploss())
	}
	if roi := s.MinimalROI(); roi["0"] != 0.04 {
		t.Errorf("MinimalROI() = %v, want default {0: 0.04}", roi)
	}
}

func TestLoadInvalidSpec(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "bad.cue"), `
BadStoploss: {
	extends: "Strategy"
	spec: {
		stoploss: 0.05
	}
}
`)

	_, err := Load(cfg, "BadStoploss", nil, quiet())
	var consErr *resolver.ConstructionError
	if !errors.As(err, &consErr) {
		t.Fatalf("Load() error = %v, want *ConstructionError for positive stoploss", err)
	}
	if consErr.Path == "" {
		t.Error("ConstructionError.Path empty, want the plugin file")
	}
}

func TestLoadParamOverrides(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "s.cue"), `
Tunable: {
	extends: "Strategy"
	spec: { timeframe: "1h" }
}
`)

	t.Run("override declared values", func(t *testing.T) {
		res, err := Load(cfg, "Tunable", resolver.Params{
			"timeframe": "15m",
			"stoploss":  -0.20,
			"custom":    "kept",
		}, quiet())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		s := res.Instance
		if s.Timeframe() != "15m" {
			t.Errorf("Timeframe() = %q, want the override", s.Timeframe())
		}
		if s.Stoploss() != -0.20 {
			t.Errorf("Stoploss() = %v, want the override", s.Stoploss())
		}
		if v, ok := s.(*Declared).Param("custom"); !ok || v != "kept" {
			t.Errorf("Param(custom) = (%v, %t), want it observable", v, ok)
		}
	})

	t.Run("wrong type rejected", func(t *testing.T) {
		_, err := Load(cfg, "Tunable", resolver.Params{"timeframe": 5}, quiet())
		var consErr *resolver.ConstructionError
		if !errors.As(err, &consErr) {
			t.Fatalf("Load() error = %v, want *ConstructionError", err)
		}
	})

	t.Run("positive stoploss rejected", func(t *testing.T) {
		_, err := Load(cfg, "Tunable", resolver.Params{"stoploss": 0.3}, quiet())
		if err == nil {
			t.Fatal("Load() accepted a positive stoploss override")
		}
	})
}

func TestLoadBuiltinFallback(t *testing.T) {
	cfg, _ := testConfig(t)

	res, err := Load(cfg, "SampleStrategy", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !res.Builtin() {
		t.Errorf("Builtin() = false, Path = %q, want built-in provenance", res.Path)
	}
	if res.Instance.Timeframe() != "5m" {
		t.Errorf("Timeframe() = %q", res.Instance.Timeframe())
	}
}

func TestLoadFileShadowsBuiltin(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "shadow.cue"), `
SampleStrategy: {
	extends: "Strategy"
	spec: { timeframe: "4h" }
}
`)

	res, err := Load(cfg, "SampleStrategy", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Builtin() {
		t.Error("built-in won over a search-path declaration")
	}
	if res.Instance.Timeframe() != "4h" {
		t.Errorf("Timeframe() = %q, want the file's 4h", res.Instance.Timeframe())
	}
}

func TestLoadNotFound(t *testing.T) {
	cfg, _ := testConfig(t)

	_, err := Load(cfg, "NoSuchStrategy", nil, quiet())
	if err == nil {
		t.Fatal("Load() = nil error for an unknown strategy")
	}
}

func TestLoadAmbiguity(t *testing.T) {
	cfg, dir := testConfig(t)
	extra := t.TempDir()
	cfg.SearchPaths = []string{extra}
	decl := `
Dup: {
	extends: "Strategy"
	spec: {}
}
`
	testutil.MustWriteFile(t, filepath.Join(dir, "one.cue"), decl)
	testutil.MustWriteFile(t, filepath.Join(extra, "two.cue"), decl)

	_, err := Load(cfg, "Dup", nil, quiet())
	var ambErr *resolver.AmbiguityError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Load() error = %v, want *AmbiguityError", err)
	}
	if len(ambErr.Paths) != 2 {
		t.Errorf("Paths = %v, want both declaring files", ambErr.Paths)
	}
}

func TestBuiltins(t *testing.T) {
	names := Builtins()
	if len(names) == 0 {
		t.Fatal("Builtins() is empty")
	}
	found := false
	for _, n := range names {
		if n == "SampleStrategy" {
			found = true
		}
	}
	if !found {
		t.Errorf("Builtins() = %v, want SampleStrategy included", names)
	}
}
