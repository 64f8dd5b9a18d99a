// SPDX-License-Identifier: MPL-2.0

package hyperoptloss

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// builtins holds the compiled-in loss functions, populated once and never
// mutated afterwards.
var builtins = func() *resolver.Registry[LossFunc] {
	r := resolver.NewRegistry[LossFunc]()
	r.Register("DefaultHyperOptLoss", newDefaultLoss)
	return r
}()

// Builtins returns the names of the compiled-in loss functions.
func Builtins() []string {
	return builtins.Names()
}

// newDefaultLoss builds the default loss: pure profit maximization.
func newDefaultLoss(params resolver.Params) (LossFunc, error) {
	d := &Declared{
		name:   "DefaultHyperOptLoss",
		spec:   Spec{ProfitWeight: 1.0},
		params: params,
	}
	if err := d.applyParams(); err != nil {
		return nil, err
	}
	return d, nil
}
