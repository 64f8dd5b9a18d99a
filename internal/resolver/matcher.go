// SPDX-License-Identifier: MPL-2.0

package resolver

import "github.com/Shmel999/FREQTRADE/pkg/pluginfile"

// Candidate is an implementation that matched both the requested name and
// the capability contract, together with the file it was declared in.
type Candidate struct {
	Implementation pluginfile.Implementation
	Path           string
}

// matchUnit inspects a loaded unit for an implementation whose name equals
// name exactly (case-sensitive, no aliasing) and whose direct ancestor list
// contains contract. Names are unique within a unit, so at most one
// candidate can come out of a single file.
//
// Only direct ancestors count: an implementation that extends an
// intermediate which in turn extends the contract does not match. See the
// conformance note in the package documentation of pluginfile.
func matchUnit(unit *SourceUnit, name, contract string) (Candidate, bool) {
	impl, ok := unit.File.Lookup(name)
	if !ok {
		return Candidate{}, false
	}
	if !impl.ExtendsContains(contract) {
		return Candidate{}, false
	}
	return Candidate{Implementation: impl, Path: unit.Path}, true
}
