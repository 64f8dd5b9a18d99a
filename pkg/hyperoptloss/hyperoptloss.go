// SPDX-License-Identifier: MPL-2.0

// Package hyperoptloss defines the hyperopt loss function contract and
// resolves user-supplied loss declarations into usable instances.
//
// The optimization loop that evaluates losses over backtest results is
// outside this codebase; it only depends on the LossFunc interface.
package hyperoptloss

import "github.com/Shmel999/FREQTRADE/internal/resolver"

// Contract is the contract name loss declarations must list in `extends`.
const Contract = "HyperOptLoss"

// Desc is the capability descriptor for hyperopt loss functions.
var Desc = resolver.Descriptor{Contract: Contract, TypeLabel: "hyperopt loss function"}

type (
	// Result summarizes one backtest run for loss evaluation.
	Result struct {
		// TradeCount is the number of closed trades.
		TradeCount int

		// ProfitTotal is the summed relative profit over all trades.
		ProfitTotal float64

		// MaxDrawdown is the maximum account drawdown, as a positive
		// fraction.
		MaxDrawdown float64

		// AvgTradeMinutes is the mean trade duration in minutes.
		AvgTradeMinutes float64
	}

	// LossFunc is the base contract every hyperopt loss function conforms
	// to. Lower is better; the optimizer minimizes this value.
	LossFunc interface {
		// Name is the implementation name the loss was resolved under.
		Name() string

		// Loss scores one backtest result.
		Loss(res Result) float64
	}
)
