// SPDX-License-Identifier: MPL-2.0

package pairlist

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/pkg/cueutil"
)

//go:embed pairlist_schema.cue
var pairlistSchema string

// Spec is the decoded body of a pairlist filter declaration.
type Spec struct {
	Mode     string   `json:"mode"`
	Patterns []string `json:"patterns"`
}

// Declared is a PairFilter built from a plugin declaration.
type Declared struct {
	name   string
	spec   Spec
	params resolver.Params
}

// Capability returns the pairlist capability for the resolver.
func Capability() resolver.Capability[PairFilter] {
	return resolver.Capability[PairFilter]{
		Descriptor: Desc,
		Factory:    newDeclared,
	}
}

func newDeclared(name string, spec cue.Value, params resolver.Params) (PairFilter, error) {
	decoded, err := cueutil.UnifyAndDecode[Spec](spec, pairlistSchema, "#Spec", name)
	if err != nil {
		return nil, err
	}

	// Validate patterns eagerly so a bad glob is a construction failure,
	// not a silent non-match at filter time.
	for _, pat := range decoded.Patterns {
		if _, matchErr := doublestar.Match(pat, ""); matchErr != nil {
			return nil, fmt.Errorf("invalid pair pattern %q: %w", pat, matchErr)
		}
	}

	return &Declared{name: name, spec: *decoded, params: params}, nil
}

// Name implements PairFilter.
func (d *Declared) Name() string { return d.name }

// Filter implements PairFilter. In "keep" mode a pair survives when it
// matches at least one pattern; in "drop" mode it survives when it matches
// none.
func (d *Declared) Filter(pairs []string) []string {
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if d.matches(pair) == (d.spec.Mode == "keep") {
			out = append(out, pair)
		}
	}
	return out
}

func (d *Declared) matches(pair string) bool {
	for _, pat := range d.spec.Patterns {
		if matched, err := doublestar.Match(pat, pair); err == nil && matched {
			return true
		}
	}
	return false
}

// Param returns the construction parameter supplied under key.
func (d *Declared) Param(key string) (any, bool) {
	v, ok := d.params[key]
	return v, ok
}
