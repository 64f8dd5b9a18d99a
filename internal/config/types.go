// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"path/filepath"
)

// Kind identifies a capability kind for search-path assembly.
type Kind string

const (
	// KindStrategy is the trading strategy capability.
	KindStrategy Kind = "strategy"
	// KindPairlist is the pairlist filter capability.
	KindPairlist Kind = "pairlist"
	// KindHyperoptLoss is the hyperopt loss function capability.
	KindHyperoptLoss Kind = "hyperopt-loss"
)

// Subdir returns the user-data subdirectory scanned for this kind.
func (k Kind) Subdir() string {
	switch k {
	case KindStrategy:
		return "strategies"
	case KindPairlist:
		return "pairlists"
	case KindHyperoptLoss:
		return "hyperopt_losses"
	default:
		return string(k)
	}
}

// ParseKind converts a CLI spelling into a Kind. Both singular and plural
// forms are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "strategy", "strategies":
		return KindStrategy, nil
	case "pairlist", "pairlists":
		return KindPairlist, nil
	case "hyperopt-loss", "hyperopt-losses":
		return KindHyperoptLoss, nil
	default:
		return "", fmt.Errorf("unknown capability kind %q (expected: strategies, pairlists, hyperopt-losses)", s)
	}
}

// Kinds returns all capability kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindStrategy, KindPairlist, KindHyperoptLoss}
}

type (
	// Config is the application configuration.
	Config struct {
		// UserDataDir is the root of the user plugin tree.
		UserDataDir string `mapstructure:"user_data_dir"`

		// SearchPaths are extra directories appended to every capability's
		// search path, after the user data directories.
		SearchPaths []string `mapstructure:"search_paths"`

		UI     UIConfig     `mapstructure:"ui"`
		Notify NotifyConfig `mapstructure:"notify"`
		Watch  WatchConfig  `mapstructure:"watch"`
	}

	// UIConfig holds CLI output settings.
	UIConfig struct {
		// Verbose enables debug-level log output.
		Verbose bool `mapstructure:"verbose"`
	}

	// NotifyConfig holds notification hub settings.
	NotifyConfig struct {
		// Enabled turns resolution-event notifications on.
		Enabled bool `mapstructure:"enabled"`
	}

	// WatchConfig holds plugin-directory watcher settings.
	WatchConfig struct {
		// DebounceMS is the quiet period in milliseconds after the last
		// filesystem event before a re-scan fires. Zero means the watcher
		// default.
		DebounceMS int `mapstructure:"debounce_ms"`
	}
)

// SearchPath assembles the ordered directory list scanned for kind:
// the local user_data tree first, then the configured user data directory,
// then the extra search paths. Built-in implementations are not on the
// path; they are the fallback consulted when the path yields nothing.
//
// Directories are not checked for existence here; the scanner tolerates
// missing ones.
func (c *Config) SearchPath(kind Kind) []string {
	var dirs []string

	local := filepath.Join("user_data", kind.Subdir())
	dirs = append(dirs, local)

	if c.UserDataDir != "" {
		global := filepath.Join(c.UserDataDir, kind.Subdir())
		if global != local {
			dirs = append(dirs, global)
		}
	}

	dirs = append(dirs, c.SearchPaths...)
	return dirs
}
