// SPDX-License-Identifier: MPL-2.0

package resolver

// Resolve searches the directories of searchPath, in order, for an
// implementation of cap named name, and instantiates it with params.
//
// Every directory is scanned even after an early match: the at-most-one
// rule holds across the entire search path, so ambiguity between an early
// and a late directory must still be detected. The outcomes are:
//
//   - no match anywhere: (nil, nil) — absence is a normal outcome, letting
//     callers fall back to built-in implementations;
//   - exactly one match: the instance and its source path;
//   - more than one match: (*AmbiguityError) naming every colliding file;
//   - factory failure on the unique match: (*ConstructionError).
//
// params is snapshotted before the factory sees it; the caller's map is
// never retained or mutated.
func Resolve[T any](cap Capability[T], name string, searchPath []string, params Params, opts ...Option) (*Resolved[T], error) {
	o := applyOptions(opts)
	o.logger.Debug("resolving implementation",
		"type", cap.TypeLabel, "name", name, "dirs", searchPath)

	var candidates []Candidate
	for _, dir := range searchPath {
		for unit := range scanUnits(dir, o) {
			if c, ok := matchUnit(unit, name, cap.Contract); ok {
				candidates = append(candidates, c)
			}
		}
	}

	switch len(candidates) {
	case 0:
		o.logger.Debug("no implementation found",
			"type", cap.TypeLabel, "name", name, "dirs", searchPath)
		return nil, nil
	case 1:
		c := candidates[0]
		instance, err := cap.Factory(name, c.Implementation.Spec, params.Clone())
		if err != nil {
			return nil, &ConstructionError{
				TypeLabel: cap.TypeLabel,
				Name:      name,
				Path:      c.Path,
				Err:       err,
			}
		}
		o.logger.Debug("resolved implementation",
			"type", cap.TypeLabel, "name", name, "path", c.Path)
		return &Resolved[T]{Instance: instance, Path: c.Path}, nil
	default:
		paths := make([]string, len(candidates))
		for i, c := range candidates {
			paths[i] = c.Path
		}
		return nil, &AmbiguityError{TypeLabel: cap.TypeLabel, Name: name, Paths: paths}
	}
}
