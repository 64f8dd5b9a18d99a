// SPDX-License-Identifier: MPL-2.0

package pluginfile

import (
	"slices"

	"cuelang.org/go/cue"
)

// Extension is the file extension that marks a file as a plugin source.
// Scanning considers nothing else.
const Extension = ".cue"

type (
	// File is one parsed plugin file: a path plus the implementations it
	// declares, in declaration order.
	File struct {
		// Path is the absolute path the file was read from.
		Path string

		// Implementations are the declared implementations.
		Implementations []Implementation
	}

	// Implementation is one declared implementation inside a plugin file.
	Implementation struct {
		// Name is the top-level field label.
		Name string

		// Extends lists the contract names this implementation directly
		// derives from, in declaration order. Always non-empty.
		Extends []string

		// Description is optional markdown for CLI display.
		Description string

		// Spec is the raw capability-specific body. Interpretation is
		// deferred to the capability that resolves this implementation.
		Spec cue.Value
	}
)

// Lookup returns the implementation with the given name. The match is exact
// and case-sensitive.
func (f *File) Lookup(name string) (Implementation, bool) {
	for _, impl := range f.Implementations {
		if impl.Name == name {
			return impl, true
		}
	}
	return Implementation{}, false
}

// ExtendsContains reports whether contract appears in the implementation's
// direct ancestor list. Only direct ancestors are consulted; contracts
// reachable through an intermediate implementation do not count.
func (i Implementation) ExtendsContains(contract string) bool {
	return slices.Contains(i.Extends, contract)
}
