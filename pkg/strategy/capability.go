// SPDX-License-Identifier: MPL-2.0

package strategy

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"

	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/pkg/cueutil"
)

//go:embed strategy_schema.cue
var strategySchema string

// Spec is the decoded body of a strategy declaration.
type Spec struct {
	Timeframe  string             `json:"timeframe"`
	Stoploss   float64            `json:"stoploss"`
	MinimalROI map[string]float64 `json:"minimal_roi"`
	Attributes map[string]any     `json:"attributes,omitempty"`
}

// Declared is a Strategy built from a plugin declaration, with
// construction parameters applied on top of the declared spec.
type Declared struct {
	name   string
	spec   Spec
	params resolver.Params
}

// Capability returns the strategy capability for the resolver. The factory
// validates the declaration body against the strategy schema and applies
// construction parameter overrides.
func Capability() resolver.Capability[Strategy] {
	return resolver.Capability[Strategy]{
		Descriptor: Desc,
		Factory:    newDeclared,
	}
}

func newDeclared(name string, spec cue.Value, params resolver.Params) (Strategy, error) {
	decoded, err := cueutil.UnifyAndDecode[Spec](spec, strategySchema, "#Spec", name)
	if err != nil {
		return nil, err
	}

	d := &Declared{name: name, spec: *decoded, params: params}
	if err := d.applyParams(); err != nil {
		return nil, err
	}
	return d, nil
}

// applyParams overrides declared values with construction parameters. Only
// known keys with the right type are accepted; anything else is a
// construction failure, not a silent ignore.
func (d *Declared) applyParams() error {
	for key, value := range d.params {
		switch key {
		case "timeframe":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("parameter %q: expected string, got %T", key, value)
			}
			d.spec.Timeframe = s
		case "stoploss":
			f, ok := value.(float64)
			if !ok {
				return fmt.Errorf("parameter %q: expected number, got %T", key, value)
			}
			if f >= 0 {
				return fmt.Errorf("parameter %q: must be negative, got %v", key, f)
			}
			d.spec.Stoploss = f
		default:
			// Unknown parameters are kept observable via Param but do not
			// alter the declared spec.
		}
	}
	return nil
}

// Name implements Strategy.
func (d *Declared) Name() string { return d.name }

// Timeframe implements Strategy.
func (d *Declared) Timeframe() string { return d.spec.Timeframe }

// Stoploss implements Strategy.
func (d *Declared) Stoploss() float64 { return d.spec.Stoploss }

// MinimalROI implements Strategy.
func (d *Declared) MinimalROI() map[string]float64 { return d.spec.MinimalROI }

// Param returns the construction parameter supplied under key, letting
// callers verify what the instance was built with.
func (d *Declared) Param(key string) (any, bool) {
	v, ok := d.params[key]
	return v, ok
}

// Attribute returns a free-form declared attribute.
func (d *Declared) Attribute(key string) (any, bool) {
	v, ok := d.spec.Attributes[key]
	return v, ok
}
