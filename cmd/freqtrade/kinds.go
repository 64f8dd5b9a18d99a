// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/pkg/hyperoptloss"
	"github.com/Shmel999/FREQTRADE/pkg/pairlist"
	"github.com/Shmel999/FREQTRADE/pkg/strategy"
)

// capabilityInfo is the non-generic slice of a capability the listing
// commands need: its descriptor and the names of its built-ins.
type capabilityInfo struct {
	desc     resolver.Descriptor
	builtins func() []string
}

// capabilityFor maps a config kind to its capability info.
func capabilityFor(kind config.Kind) capabilityInfo {
	switch kind {
	case config.KindPairlist:
		return capabilityInfo{desc: pairlist.Desc, builtins: pairlist.Builtins}
	case config.KindHyperoptLoss:
		return capabilityInfo{desc: hyperoptloss.Desc, builtins: hyperoptloss.Builtins}
	default:
		return capabilityInfo{desc: strategy.Desc, builtins: strategy.Builtins}
	}
}
