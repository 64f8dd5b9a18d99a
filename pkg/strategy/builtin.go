// SPDX-License-Identifier: MPL-2.0

package strategy

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// builtins holds the compiled-in strategies. The registry is populated once
// here and never mutated afterwards; it is the fallback consulted when the
// search path yields nothing.
var builtins = func() *resolver.Registry[Strategy] {
	r := resolver.NewRegistry[Strategy]()
	r.Register("SampleStrategy", newSampleStrategy)
	return r
}()

// Builtins returns the names of the compiled-in strategies.
func Builtins() []string {
	return builtins.Names()
}

// newSampleStrategy builds the reference strategy shipped with the
// application: conservative defaults, useful for first runs and tests.
func newSampleStrategy(params resolver.Params) (Strategy, error) {
	d := &Declared{
		name: "SampleStrategy",
		spec: Spec{
			Timeframe: "5m",
			Stoploss:  -0.10,
			MinimalROI: map[string]float64{
				"0":  0.04,
				"30": 0.02,
				"60": 0.01,
			},
		},
		params: params,
	}
	if err := d.applyParams(); err != nil {
		return nil, err
	}
	return d, nil
}
