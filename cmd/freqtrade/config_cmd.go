// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shmel999/FREQTRADE/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the freqtrade configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging defaults, the config file and CLI
flags, including the assembled search path for every capability kind.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, TitleStyle.Render("Configuration"))
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("user_data_dir:"), cfg.UserDataDir)
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("search_paths:"), formatList(cfg.SearchPaths))
		fmt.Fprintf(w, "%s %t\n", SubtitleStyle.Render("ui.verbose:"), cfg.UI.Verbose)
		fmt.Fprintf(w, "%s %t\n", SubtitleStyle.Render("notify.enabled:"), cfg.Notify.Enabled)
		fmt.Fprintf(w, "%s %d\n", SubtitleStyle.Render("watch.debounce_ms:"), cfg.Watch.DebounceMS)

		fmt.Fprintln(w)
		fmt.Fprintln(w, TitleStyle.Render("Search paths by kind"))
		for _, kind := range config.Kinds() {
			fmt.Fprintf(w, "%s\n", SubtitleStyle.Render(string(kind)+":"))
			for _, dir := range cfg.SearchPath(kind) {
				fmt.Fprintf(w, "  - %s\n", dir)
			}
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where configuration files are looked up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if cfgFile != "" {
			fmt.Fprintln(w, cfgFile)
			return nil
		}
		cfgDir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, SubtitleStyle.Render("Checked in order, first match wins:"))
		fmt.Fprintf(w, "  %s\n", filepath.Join(cfgDir, config.ConfigFileName+".cue"))
		fmt.Fprintf(w, "  %s\n", filepath.Join(cfgDir, config.ConfigFileName+".toml"))
		fmt.Fprintf(w, "  %s\n", "./"+config.ConfigFileName+".cue")
		fmt.Fprintf(w, "  %s\n", "./"+config.ConfigFileName+".toml")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// formatList renders a string slice for single-line display.
func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
