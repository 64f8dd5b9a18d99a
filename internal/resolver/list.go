// SPDX-License-Identifier: MPL-2.0

package resolver

type (
	// Available describes one implementation found during a full scan,
	// regardless of name. Used by the CLI's listing commands.
	Available struct {
		Name        string
		Path        string
		Description string
		Extends     []string
	}

	// LoadFailure records a plugin file that could not be loaded during a
	// full scan. Listing surfaces these so users can see why an expected
	// implementation is missing.
	LoadFailure struct {
		Path string
		Err  error
	}

	// ScanReport is the outcome of scanning a whole search path for every
	// implementation of one capability.
	ScanReport struct {
		// Implementations are all conforming implementations, in
		// search-path encounter order.
		Implementations []Available

		// Failures are the files that did not load.
		Failures []LoadFailure
	}
)

// ListAvailable scans every directory of searchPath and reports all
// implementations whose direct ancestor list contains the capability
// contract, together with the files that failed to load. No instantiation
// happens; this is a read-only inventory.
func ListAvailable(desc Descriptor, searchPath []string, opts ...Option) *ScanReport {
	report := &ScanReport{}

	opts = append(opts, withLoadErrorFunc(func(path string, err error) {
		report.Failures = append(report.Failures, LoadFailure{Path: path, Err: err})
	}))
	o := applyOptions(opts)
	o.logger.Debug("listing implementations", "type", desc.TypeLabel, "dirs", searchPath)

	for _, dir := range searchPath {
		for unit := range scanUnits(dir, o) {
			for _, impl := range unit.File.Implementations {
				if !impl.ExtendsContains(desc.Contract) {
					continue
				}
				report.Implementations = append(report.Implementations, Available{
					Name:        impl.Name,
					Path:        unit.Path,
					Description: impl.Description,
					Extends:     impl.Extends,
				})
			}
		}
	}

	return report
}
