// SPDX-License-Identifier: MPL-2.0

package strategy

import (
	"fmt"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/issue"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
)

// Load resolves the strategy called name: the configured search path first,
// then the compiled-in strategies. Exhausting both is an error here —
// unlike resolver.Resolve, Load has no further fallback to offer its
// caller.
func Load(cfg *config.Config, name string, params resolver.Params, opts ...resolver.Option) (*resolver.Resolved[Strategy], error) {
	res, err := resolver.Resolve(Capability(), name, cfg.SearchPath(config.KindStrategy), params, opts...)
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
		return &resolver.Resolved[Strategy]{Instance: instance}, nil
	}

	return nil, issue.NewErrorContext().
		WithOperation("load strategy").
		WithResource(name).
		WithSuggestion("Check the strategy name for typos").
		WithSuggestion("Run 'freqtrade list strategies' to see what is available").
		WithSuggestion("Place custom strategy files under user_data/strategies").
		Wrap(fmt.Errorf("no strategy %q found in the search path or built-ins", name)).
		BuildError()
}
