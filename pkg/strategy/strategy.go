// SPDX-License-Identifier: MPL-2.0

// Package strategy defines the trading strategy contract and resolves
// user-supplied strategy declarations into usable instances.
//
// The numeric pipeline that consumes a Strategy (indicator computation,
// backtesting, live execution) lives outside this codebase; downstream
// components only depend on the Strategy interface and never on how an
// instance was resolved.
package strategy

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// Contract is the contract name strategy declarations must list in
// `extends`.
const Contract = "Strategy"

// Desc is the capability descriptor for strategies.
var Desc = resolver.Descriptor{Contract: Contract, TypeLabel: "strategy"}

// Strategy is the base contract every strategy implementation conforms to.
type Strategy interface {
	// Name is the implementation name the strategy was resolved under.
	Name() string

	// Timeframe is the candle interval the strategy operates on
	// (e.g. "5m", "1h").
	Timeframe() string

	// Stoploss is the maximum tolerated loss per trade, as a negative
	// fraction (e.g. -0.10 for 10%).
	Stoploss() float64

	// MinimalROI maps holding time in minutes (as string keys, matching
	// the declaration format) to the minimal return that triggers an exit.
	MinimalROI() map[string]float64
}
