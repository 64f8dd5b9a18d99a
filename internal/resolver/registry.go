// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"
	"sort"
	"sync"
)

type (
	// BuiltinFactory constructs a compiled-in implementation from
	// construction parameters.
	BuiltinFactory[T any] func(params Params) (T, error)

	// Registry holds the compiled-in implementations of one capability.
	// Each capability package registers its built-ins explicitly at
	// process start; the registry is the fallback consulted when
	// resolution over the search path finds nothing.
	//
	// Registration after startup is a programmer error, not a runtime
	// condition, so duplicate names panic instead of returning an error.
	Registry[T any] struct {
		mu        sync.RWMutex
		factories map[string]BuiltinFactory[T]
	}
)

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]BuiltinFactory[T])}
}

// Register adds a built-in implementation under name. It panics if the name
// is already taken.
func (r *Registry[T]) Register(name string, factory BuiltinFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("resolver: built-in %q registered twice", name))
	}
	r.factories[name] = factory
}

// New constructs the built-in registered under name. The second return is
// false when no such built-in exists; a factory error is returned verbatim.
// params is snapshotted before the factory sees it.
func (r *Registry[T]) New(name string, params Params) (T, bool, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false, nil
	}
	instance, err := factory(params.Clone())
	if err != nil {
		return zero, true, err
	}
	return instance, true, nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
