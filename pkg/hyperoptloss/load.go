// SPDX-License-Identifier: MPL-2.0

package hyperoptloss

import (
	"fmt"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/issue"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
)

// Load resolves the loss function called name: the configured search path
// first, then the compiled-in losses.
func Load(cfg *config.Config, name string, params resolver.Params, opts ...resolver.Option) (*resolver.Resolved[LossFunc], error) {
	res, err := resolver.Resolve(Capability(), name, cfg.SearchPath(config.KindHyperoptLoss), params, opts...)
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
		return &resolver.Resolved[LossFunc]{Instance: instance}, nil
	}

	return nil, issue.NewErrorContext().
		WithOperation("load hyperopt loss function").
		WithResource(name).
		WithSuggestion("Check the loss function name for typos").
		WithSuggestion("Run 'freqtrade list hyperopt-losses' to see what is available").
		WithSuggestion("Place custom loss files under user_data/hyperopt_losses").
		Wrap(fmt.Errorf("no hyperopt loss function %q found in the search path or built-ins", name)).
		BuildError()
}
