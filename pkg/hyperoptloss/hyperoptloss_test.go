// SPDX-License-Identifier: MPL-2.0

package hyperoptloss

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/internal/testutil"
)

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	restore := testutil.MustChdir(t, t.TempDir())
	t.Cleanup(restore)

	userData := t.TempDir()
	cfg := &config.Config{UserDataDir: userData}
	return cfg, filepath.Join(userData, "hyperopt_losses")
}

func quiet() resolver.Option {
	return resolver.WithLogger(log.New(io.Discard))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadWeightedLoss(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "balanced.cue"), `
BalancedLoss: {
	extends: "HyperOptLoss"
	spec: {
		profit_weight:      2.0
		drawdown_weight:    1.5
		trade_count_weight: 0.1
		target_trades:      100
	}
}
`)

	res, err := Load(cfg, "BalancedLoss", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sample := Result{TradeCount: 80, ProfitTotal: 0.30, MaxDrawdown: 0.12, AvgTradeMinutes: 45}
	// -0.30*2.0 + 0.12*1.5 + |80-100|*0.1
	want := -0.60 + 0.18 + 2.0
	if got := res.Instance.Loss(sample); !approx(got, want) {
		t.Errorf("Loss() = %v, want %v", got, want)
	}
}

func TestLoadSchemaDefaults(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "plain.cue"), `
PlainLoss: {
	extends: "HyperOptLoss"
	spec: {}
}
`)

	res, err := Load(cfg, "PlainLoss", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Defaults reduce the loss to pure negated profit.
	sample := Result{TradeCount: 10, ProfitTotal: 0.5, MaxDrawdown: 0.9}
	if got := res.Instance.Loss(sample); !approx(got, -0.5) {
		t.Errorf("Loss() = %v, want -0.5 under defaults", got)
	}
}

func TestLoadParamOverrides(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "t.cue"), `
Tunable: {
	extends: "HyperOptLoss"
	spec: {}
}
`)

	t.Run("weight override applies", func(t *testing.T) {
		res, err := Load(cfg, "Tunable", resolver.Params{"drawdown_weight": 3.0}, quiet())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		sample := Result{ProfitTotal: 0.0, MaxDrawdown: 0.1}
		if got := res.Instance.Loss(sample); !approx(got, 0.3) {
			t.Errorf("Loss() = %v, want 0.3", got)
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := Load(cfg, "Tunable", resolver.Params{"profit_weight": -1.0}, quiet())
		var consErr *resolver.ConstructionError
		if !errors.As(err, &consErr) {
			t.Fatalf("Load() error = %v, want *ConstructionError", err)
		}
	})

	t.Run("non-numeric weight rejected", func(t *testing.T) {
		if _, err := Load(cfg, "Tunable", resolver.Params{"profit_weight": "high"}, quiet()); err == nil {
			t.Fatal("Load() accepted a string weight")
		}
	})
}

func TestLoadInvalidSpec(t *testing.T) {
	cfg, dir := testConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "neg.cue"), `
NegativeWeight: {
	extends: "HyperOptLoss"
	spec: {
		profit_weight: -2.0
	}
}
`)

	var consErr *resolver.ConstructionError
	if _, err := Load(cfg, "NegativeWeight", nil, quiet()); !errors.As(err, &consErr) {
		t.Fatalf("want *ConstructionError for a negative declared weight, got %v", err)
	}
}

func TestLoadBuiltinFallback(t *testing.T) {
	cfg, _ := testConfig(t)

	res, err := Load(cfg, "DefaultHyperOptLoss", nil, quiet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !res.Builtin() {
		t.Error("Builtin() = false, want the compiled-in loss")
	}
	sample := Result{ProfitTotal: 1.0}
	if got := res.Instance.Loss(sample); !approx(got, -1.0) {
		t.Errorf("Loss() = %v, want -1.0 for the default loss", got)
	}
}

func TestLoadNotFound(t *testing.T) {
	cfg, _ := testConfig(t)
	if _, err := Load(cfg, "NoSuchLoss", nil, quiet()); err == nil {
		t.Fatal("Load() = nil error for an unknown loss function")
	}
}
