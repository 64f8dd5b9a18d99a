// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"maps"

	"cuelang.org/go/cue"
)

type (
	// Params carries named construction parameters, forwarded verbatim to
	// the implementation factory. The resolver snapshots the map before
	// handing it to a factory so callers and factories never share storage.
	Params map[string]any

	// Descriptor identifies a capability kind: the contract every valid
	// implementation must directly extend, and the human-readable label
	// used in log records and error messages.
	//
	// Descriptors are immutable values created once at process start.
	Descriptor struct {
		// Contract is the contract name implementations must list in
		// `extends` (e.g. "Strategy").
		Contract string

		// TypeLabel is the diagnostic label (e.g. "strategy").
		TypeLabel string
	}

	// Capability couples a Descriptor with the factory that turns a
	// uniquely resolved declaration into a live instance.
	Capability[T any] struct {
		Descriptor

		// Factory builds an instance from the implementation's declared
		// spec body and the caller's construction parameters. It is only
		// invoked for a uniquely resolved implementation.
		Factory func(name string, spec cue.Value, params Params) (T, error)
	}

	// Resolved is a successfully resolved and constructed instance together
	// with its provenance.
	Resolved[T any] struct {
		// Instance conforms to the capability's contract.
		Instance T

		// Path is the plugin file the implementation came from. Empty for
		// instances constructed from the built-in registry.
		Path string
	}
)

// Clone returns an independent snapshot of the parameters. A nil receiver
// yields nil, which factories must treat as "no parameters".
func (p Params) Clone() Params {
	return maps.Clone(p)
}

// Builtin reports whether the instance came from the built-in registry
// rather than a plugin file.
func (r *Resolved[T]) Builtin() bool {
	return r.Path == ""
}
