// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"errors"
	"testing"
)

func TestRegistryNew(t *testing.T) {
	r := NewRegistry[*widget]()
	r.Register("Known", func(params Params) (*widget, error) {
		return &widget{name: "Known", params: params}, nil
	})

	t.Run("hit", func(t *testing.T) {
		w, ok, err := r.New("Known", Params{"k": 1})
		if err != nil || !ok {
			t.Fatalf("New() = (_, %t, %v), want a hit", ok, err)
		}
		if w.name != "Known" {
			t.Errorf("name = %q, want Known", w.name)
		}
	})

	t.Run("miss is not an error", func(t *testing.T) {
		_, ok, err := r.New("Unknown", nil)
		if ok || err != nil {
			t.Fatalf("New() = (_, %t, %v), want (false, nil)", ok, err)
		}
	})

	t.Run("params are snapshotted", func(t *testing.T) {
		caller := Params{"k": "original"}
		w, _, err := r.New("Known", caller)
		if err != nil {
			t.Fatal(err)
		}
		caller["k"] = "mutated"
		if w.params["k"] != "original" {
			t.Error("factory params aliased the caller's map")
		}
	})
}

func TestRegistryFactoryError(t *testing.T) {
	sentinel := errors.New("rejected")
	r := NewRegistry[*widget]()
	r.Register("Broken", func(Params) (*widget, error) {
		return nil, sentinel
	})

	_, ok, err := r.New("Broken", nil)
	if !ok {
		t.Error("ok = false, want true: the name exists even when construction fails")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want the factory error", err)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry[*widget]()
	r.Register("Dup", func(Params) (*widget, error) { return &widget{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("second Register() did not panic")
		}
	}()
	r.Register("Dup", func(Params) (*widget, error) { return &widget{}, nil })
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry[*widget]()
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		r.Register(name, func(Params) (*widget, error) { return &widget{}, nil })
	}

	names := r.Names()
	want := []string{"Alpha", "Bravo", "Charlie"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want sorted %v", names, want)
		}
	}
}
