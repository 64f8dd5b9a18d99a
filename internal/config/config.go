// SPDX-License-Identifier: MPL-2.0

// Package config loads and represents the freqtrade configuration: the user
// data directory, extra plugin search paths, and UI/notification/watcher
// settings. Configuration files are CUE (validated against an embedded
// schema) or TOML; both are merged into viper on top of defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/Shmel999/FREQTRADE/internal/issue"
	"github.com/Shmel999/FREQTRADE/pkg/cueutil"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "freqtrade"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the freqtrade configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultUserDataDir returns the default user plugin tree root,
// ~/.freqtrade on all platforms.
func DefaultUserDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "."+AppName), nil
}

// DefaultConfig returns the built-in defaults. UserDataDir is left empty
// here and filled in by Load; tests that bypass Load get a config whose
// search path only covers the local user_data tree.
func DefaultConfig() *Config {
	return &Config{
		SearchPaths: []string{},
		UI:          UIConfig{Verbose: false},
		Notify:      NotifyConfig{Enabled: true},
		Watch:       WatchConfig{DebounceMS: 0},
	}
}

// Load reads the configuration. Resolution order:
//
//  1. the --config override, used exclusively when set;
//  2. config.cue, then config.toml, in the config directory;
//  3. config.cue, then config.toml, in the current directory;
//  4. defaults only.
//
// A missing file is not an error; an unreadable or invalid one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("search_paths", defaults.SearchPaths)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("notify.enabled", defaults.Notify.Enabled)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)

	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		if err := loadFileIntoViper(v, configFilePathOverride); err != nil {
			return nil, wrapConfigLoadError(err, configFilePathOverride)
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}

		candidates := []string{
			filepath.Join(cfgDir, ConfigFileName+".cue"),
			filepath.Join(cfgDir, ConfigFileName+".toml"),
			ConfigFileName + ".cue",
			ConfigFileName + ".toml",
		}
		for _, path := range candidates {
			if !fileExists(path) {
				continue
			}
			if err := loadFileIntoViper(v, path); err != nil {
				return nil, wrapConfigLoadError(err, path)
			}
			break
		}
		// If no config file found, use defaults (no error).
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UserDataDir == "" {
		userData, err := DefaultUserDataDir()
		if err != nil {
			return nil, err
		}
		cfg.UserDataDir = userData
	}

	return &cfg, nil
}

// wrapConfigLoadError attaches user-facing context to a config parse error.
func wrapConfigLoadError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE or TOML syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'freqtrade config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// loadFileIntoViper dispatches on the config file extension.
func loadFileIntoViper(v *viper.Viper, path string) error {
	switch filepath.Ext(path) {
	case ".toml":
		return loadTOMLIntoViper(v, path)
	default:
		return loadCUEIntoViper(v, path)
	}
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into viper.
//
// This uses manual CUE parsing instead of cueutil.ParseAndDecode because the
// config decodes to map[string]any (not a struct) for viper integration, and
// validation is non-concrete since every field is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(); err != nil {
		return cueutil.FormatError(err, path)
	}

	var settings map[string]any
	if err := unified.Decode(&settings); err != nil {
		return cueutil.FormatError(err, path)
	}

	return v.MergeConfigMap(settings)
}

// loadTOMLIntoViper parses a TOML file and merges its contents into viper.
// TOML is accepted as the low-friction alternative to CUE; it is not
// schema-validated beyond what viper's Unmarshal enforces.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var settings map[string]any
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return v.MergeConfigMap(settings)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
