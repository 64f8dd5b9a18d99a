// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const testSchema = `
#Widget: {
	size: int & >0
	label: string | *"unnamed"
}
`

type testWidget struct {
	Size  int    `json:"size"`
	Label string `json:"label"`
}

func TestParseAndDecode(t *testing.T) {
	t.Run("valid document with defaults", func(t *testing.T) {
		result, err := ParseAndDecodeString[testWidget](testSchema, []byte(`size: 3`), "#Widget")
		if err != nil {
			t.Fatalf("ParseAndDecodeString() error = %v", err)
		}
		if result.Value.Size != 3 {
			t.Errorf("Size = %d, want 3", result.Value.Size)
		}
		if result.Value.Label != "unnamed" {
			t.Errorf("Label = %q, want schema default", result.Value.Label)
		}
	})

	t.Run("constraint violation", func(t *testing.T) {
		_, err := ParseAndDecodeString[testWidget](testSchema, []byte(`size: -1`), "#Widget",
			WithFilename("widget.cue"))
		if err == nil {
			t.Fatal("ParseAndDecodeString() accepted size: -1 against int & >0")
		}
		if !strings.Contains(err.Error(), "widget.cue") {
			t.Errorf("error %q does not carry the filename", err)
		}
	})

	t.Run("non-concrete accepted with WithConcrete(false)", func(t *testing.T) {
		_, err := ParseAndDecodeString[map[string]any](`#Open: {a?: int, ...}`, []byte(`b: 1`), "#Open",
			WithConcrete(false))
		if err != nil {
			t.Fatalf("ParseAndDecodeString() error = %v", err)
		}
	})

	t.Run("unknown schema path", func(t *testing.T) {
		_, err := ParseAndDecodeString[testWidget](testSchema, []byte(`size: 1`), "#Missing")
		if err == nil {
			t.Fatal("ParseAndDecodeString() = nil error for unknown definition")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		_, err := ParseAndDecodeString[testWidget](testSchema, []byte(`size: 1`), "#Widget",
			WithMaxFileSize(4))
		if err == nil {
			t.Fatal("ParseAndDecodeString() accepted input above the size limit")
		}
	})
}

func TestUnifyAndDecode(t *testing.T) {
	ctx := cuecontext.New()

	t.Run("unifies within the value's context", func(t *testing.T) {
		v := ctx.CompileString(`size: 7`)
		if v.Err() != nil {
			t.Fatal(v.Err())
		}
		w, err := UnifyAndDecode[testWidget](v, testSchema, "#Widget", "w.cue")
		if err != nil {
			t.Fatalf("UnifyAndDecode() error = %v", err)
		}
		if w.Size != 7 || w.Label != "unnamed" {
			t.Errorf("decoded = %+v", w)
		}
	})

	t.Run("schema violation names the file", func(t *testing.T) {
		v := ctx.CompileString(`size: "tall"`)
		_, err := UnifyAndDecode[testWidget](v, testSchema, "#Widget", "w.cue")
		if err == nil {
			t.Fatal("UnifyAndDecode() accepted a string for an int field")
		}
		if !strings.Contains(err.Error(), "w.cue") {
			t.Errorf("error %q does not carry the filename", err)
		}
	})
}

func TestFormatError(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		if FormatError(nil, "f.cue") != nil {
			t.Error("FormatError(nil) != nil")
		}
	})

	t.Run("cue error carries path notation", func(t *testing.T) {
		ctx := cuecontext.New()
		schema := ctx.CompileString(`spec: stoploss: float & <0`)
		user := ctx.CompileString(`spec: stoploss: "deep"`)
		err := schema.Unify(user).Validate(cue.Concrete(true))
		if err == nil {
			t.Fatal("expected a validation error")
		}
		formatted := FormatError(err, "MyStrat.cue")
		if !strings.Contains(formatted.Error(), "MyStrat.cue") {
			t.Errorf("formatted error %q does not name the file", formatted)
		}
		if !strings.Contains(formatted.Error(), "stoploss") {
			t.Errorf("formatted error %q does not name the offending field", formatted)
		}
	})
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"pairs"}, "pairs"},
		{"nested", []string{"spec", "stoploss"}, "spec.stoploss"},
		{"index", []string{"pairs", "0", "mode"}, "pairs[0].mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPath(tt.in); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize at limit = %v, want nil", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("CheckFileSize over limit = nil, want error")
	}
}
