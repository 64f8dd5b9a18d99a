// SPDX-License-Identifier: MPL-2.0

// Package pairlist defines the pairlist filter contract and resolves
// user-supplied filter declarations into usable instances.
//
// A pairlist filter narrows (or passes through) the set of tradable pairs
// before the trading engine sees it. Filters declared in plugin files
// express their rule as glob patterns over pair names.
package pairlist

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// Contract is the contract name pairlist declarations must list in
// `extends`.
const Contract = "PairFilter"

// Desc is the capability descriptor for pairlist filters.
var Desc = resolver.Descriptor{Contract: Contract, TypeLabel: "pairlist filter"}

// PairFilter is the base contract every pairlist filter conforms to.
type PairFilter interface {
	// Name is the implementation name the filter was resolved under.
	Name() string

	// Filter returns the pairs that survive the filter, preserving input
	// order. The input slice is never mutated.
	Filter(pairs []string) []string
}
