// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for freqtrade.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Shmel999/FREQTRADE/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// userDir overrides the configured user data directory
	userDir string

	// logger is the shared CLI logger. Level is set in initRootConfig.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "freqtrade",
		Short: "Plugin resolution for trading strategies and friends",
		Long: TitleStyle.Render("freqtrade") + SubtitleStyle.Render(" - plugin resolution for trading strategies") + `

Strategies, pairlist filters and hyperopt loss functions are declared in
CUE plugin files and resolved by name across an ordered search path:
the local user_data tree first, then the global user data directory,
then any configured extra paths. Compiled-in implementations act as the
fallback when nothing on disk matches.

Resolution is strict about collisions: two files declaring the same
implementation name for the same contract is an error naming both files,
never a silent pick.

` + SubtitleStyle.Render("Examples:") + `
  freqtrade list strategies        List every discoverable strategy
  freqtrade show strategy MyStrat  Resolve MyStrat and show its provenance
  freqtrade watch strategies       Re-list strategies whenever files change
  freqtrade config show            Show the effective configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/freqtrade/config.cue)")
	rootCmd.PersistentFlags().StringVar(&userDir, "userdir", "", "override the user data directory")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig applies global flags before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// loadConfig loads the configuration and applies CLI overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if userDir != "" {
		cfg.UserDataDir = userDir
	}
	if cfg.UI.Verbose && !verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}
