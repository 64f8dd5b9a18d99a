// SPDX-License-Identifier: MPL-2.0

package pluginfile

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/Shmel999/FREQTRADE/pkg/cueutil"
)

//go:embed pluginfile_schema.cue
var pluginfileSchema string

// Parse reads and parses a plugin file from the given path.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin file at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses plugin file content from bytes. The document is compiled
// in a fresh CUE context and unified with the embedded #PluginFile schema;
// any compile or schema error fails the whole file.
//
// Each call uses its own context, so concurrent parses share no state and
// the Spec values of two files never alias.
func ParseBytes(data []byte, path string) (*File, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(pluginfileSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile plugin file schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath("#PluginFile"))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: #PluginFile definition not found: %w", schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return nil, cueutil.FormatError(userValue.Err(), path)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueutil.FormatError(err, path)
	}

	file := &File{Path: path}

	itr, err := unified.Fields()
	if err != nil {
		return nil, cueutil.FormatError(err, path)
	}
	for itr.Next() {
		impl, implErr := decodeImplementation(itr.Selector().String(), itr.Value())
		if implErr != nil {
			return nil, fmt.Errorf("%s: %w", path, implErr)
		}
		file.Implementations = append(file.Implementations, impl)
	}

	return file, nil
}

// decodeImplementation converts one top-level field into an Implementation.
// The schema guarantees the field shape; this only normalizes the scalar
// form of extends into a list.
func decodeImplementation(name string, v cue.Value) (Implementation, error) {
	impl := Implementation{
		Name: name,
		Spec: v.LookupPath(cue.ParsePath("spec")),
	}

	ext := v.LookupPath(cue.ParsePath("extends"))
	switch ext.Kind() {
	case cue.StringKind:
		s, err := ext.String()
		if err != nil {
			return Implementation{}, fmt.Errorf("%s: extends: %w", name, err)
		}
		impl.Extends = []string{s}
	default:
		if err := ext.Decode(&impl.Extends); err != nil {
			return Implementation{}, fmt.Errorf("%s: extends: %w", name, err)
		}
	}
	if len(impl.Extends) == 0 {
		return Implementation{}, fmt.Errorf("%s: extends must name at least one contract", name)
	}

	if desc := v.LookupPath(cue.ParsePath("description")); desc.Exists() {
		s, err := desc.String()
		if err != nil {
			return Implementation{}, fmt.Errorf("%s: description: %w", name, err)
		}
		impl.Description = s
	}

	return impl, nil
}
