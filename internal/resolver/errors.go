// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"
	"strings"
)

type (
	// AmbiguityError is returned when two or more plugin files in the
	// search path declare a same-named implementation of the same
	// contract. It is always surfaced to the caller: silently picking one
	// would make behavior depend on filesystem iteration order.
	AmbiguityError struct {
		// TypeLabel is the capability's diagnostic label.
		TypeLabel string
		// Name is the requested implementation name.
		Name string
		// Paths lists every colliding plugin file, in the order the
		// matches were encountered along the search path.
		Paths []string
	}

	// ConstructionError is returned when the uniquely resolved
	// implementation's factory rejected the supplied parameters or spec.
	// It is distinct from ambiguity so callers can tell a configuration
	// collision apart from a bad constructor argument.
	ConstructionError struct {
		TypeLabel string
		Name      string
		// Path is the plugin file the implementation came from; empty for
		// built-in implementations.
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"cannot resolve %s %q: found more than one implementation with this name.\n"+
			"Use unique names for custom strategies, pairlist filters and other plugins "+
			"so resolution stays deterministic.\nFound in:",
		e.TypeLabel, e.Name)
	for _, p := range e.Paths {
		fmt.Fprintf(&b, "\n  - %s", p)
	}
	return b.String()
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	where := e.Path
	if where == "" {
		where = "built-in"
	}
	return fmt.Sprintf("failed to construct %s %q (%s): %v", e.TypeLabel, e.Name, where, e.Err)
}

// Unwrap returns the underlying factory error.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}
