// SPDX-License-Identifier: MPL-2.0

package pairlist

import (
	"fmt"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/issue"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
)

// Load resolves the pairlist filter called name: the configured search path
// first, then the compiled-in filters.
func Load(cfg *config.Config, name string, params resolver.Params, opts ...resolver.Option) (*resolver.Resolved[PairFilter], error) {
	res, err := resolver.Resolve(Capability(), name, cfg.SearchPath(config.KindPairlist), params, opts...)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return res, nil
	}

	instance, ok, err := builtins.New(name, params)
	if err != nil {
		return nil, &resolver.ConstructionError{TypeLabel: Desc.TypeLabel, Name: name, Err: err}
	}
	if ok {
		return &resolver.Resolved[PairFilter]{Instance: instance}, nil
	}

	return nil, issue.NewErrorContext().
		WithOperation("load pairlist filter").
		WithResource(name).
		WithSuggestion("Check the filter name for typos").
		WithSuggestion("Run 'freqtrade list pairlists' to see what is available").
		WithSuggestion("Place custom pairlist files under user_data/pairlists").
		Wrap(fmt.Errorf("no pairlist filter %q found in the search path or built-ins", name)).
		BuildError()
}
