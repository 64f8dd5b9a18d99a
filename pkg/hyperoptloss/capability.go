// SPDX-License-Identifier: MPL-2.0

package hyperoptloss

import (
	_ "embed"
	"fmt"
	"math"

	"cuelang.org/go/cue"

	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/pkg/cueutil"
)

//go:embed hyperoptloss_schema.cue
var hyperoptlossSchema string

// Spec is the decoded body of a hyperopt loss declaration.
type Spec struct {
	ProfitWeight     float64 `json:"profit_weight"`
	DrawdownWeight   float64 `json:"drawdown_weight"`
	TradeCountWeight float64 `json:"trade_count_weight"`
	TargetTrades     int     `json:"target_trades"`
}

// Declared is a LossFunc built from a plugin declaration.
type Declared struct {
	name   string
	spec   Spec
	params resolver.Params
}

// Capability returns the hyperopt loss capability for the resolver.
func Capability() resolver.Capability[LossFunc] {
	return resolver.Capability[LossFunc]{
		Descriptor: Desc,
		Factory:    newDeclared,
	}
}

func newDeclared(name string, spec cue.Value, params resolver.Params) (LossFunc, error) {
	decoded, err := cueutil.UnifyAndDecode[Spec](spec, hyperoptlossSchema, "#Spec", name)
	if err != nil {
		return nil, err
	}

	d := &Declared{name: name, spec: *decoded, params: params}
	if err := d.applyParams(); err != nil {
		return nil, err
	}
	return d, nil
}

// applyParams overrides declared weights with construction parameters.
func (d *Declared) applyParams() error {
	for key, value := range d.params {
		target, known := map[string]*float64{
			"profit_weight":      &d.spec.ProfitWeight,
			"drawdown_weight":    &d.spec.DrawdownWeight,
			"trade_count_weight": &d.spec.TradeCountWeight,
		}[key]
		if !known {
			continue
		}
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("parameter %q: expected number, got %T", key, value)
		}
		if f < 0 {
			return fmt.Errorf("parameter %q: must not be negative, got %v", key, f)
		}
		*target = f
	}
	return nil
}

// Name implements LossFunc.
func (d *Declared) Name() string { return d.name }

// Loss implements LossFunc as the declared weighted sum.
func (d *Declared) Loss(res Result) float64 {
	loss := -res.ProfitTotal * d.spec.ProfitWeight
	loss += res.MaxDrawdown * d.spec.DrawdownWeight
	loss += math.Abs(float64(res.TradeCount-d.spec.TargetTrades)) * d.spec.TradeCountWeight
	return loss
}

// Param returns the construction parameter supplied under key.
func (d *Declared) Param(key string) (any, bool) {
	v, ok := d.params[key]
	return v, ok
}
