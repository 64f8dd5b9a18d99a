// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shmel999/FREQTRADE/pkg/pluginfile"
)

// SourceUnit is one successfully loaded plugin file. Units are produced by
// a single scan pass and discarded after matching; nothing is cached across
// resolver calls.
type SourceUnit struct {
	// Path is the absolute path the unit was loaded from.
	Path string

	// File holds the declared implementations.
	File *pluginfile.File
}

// scanUnits enumerates the direct entries of dir and yields every plugin
// file that loads successfully. Non-plugin entries are ignored; files that
// fail to load are logged at warn level (and reported through o.onLoadError
// when set) and skipped, so a broken file never aborts the scan.
//
// The sequence is lazy and single-use: re-scanning means calling scanUnits
// again, which re-reads the directory from scratch.
func scanUnits(dir string, o resolveOptions) iter.Seq[*SourceUnit] {
	return func(yield func(*SourceUnit) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// The search path is caller-supplied configuration; an
			// unreadable directory is reported but yields no units.
			o.logger.Warn("cannot read plugin directory", "dir", dir, "err", err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), pluginfile.Extension) {
				o.logger.Debug("ignoring non-plugin entry", "dir", dir, "name", entry.Name())
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if abs, absErr := filepath.Abs(path); absErr == nil {
				path = abs
			}

			file, parseErr := pluginfile.Parse(path)
			if parseErr != nil {
				o.logger.Warn("could not load plugin file", "path", path, "err", parseErr)
				if o.onLoadError != nil {
					o.onLoadError(path, parseErr)
				}
				continue
			}

			if !yield(&SourceUnit{Path: path, File: file}) {
				return
			}
		}
	}
}
