// SPDX-License-Identifier: MPL-2.0

package pairlist

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// builtins holds the compiled-in pairlist filters, populated once and
// never mutated afterwards.
var builtins = func() *resolver.Registry[PairFilter] {
	r := resolver.NewRegistry[PairFilter]()
	r.Register("AllPairs", newAllPairs)
	return r
}()

// Builtins returns the names of the compiled-in pairlist filters.
func Builtins() []string {
	return builtins.Names()
}

// allPairs passes every pair through unchanged.
type allPairs struct {
	params resolver.Params
}

func newAllPairs(params resolver.Params) (PairFilter, error) {
	return &allPairs{params: params}, nil
}

func (f *allPairs) Name() string { return "AllPairs" }

func (f *allPairs) Filter(pairs []string) []string {
	out := make([]string, len(pairs))
	copy(out, pairs)
	return out
}
