// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <kind>",
	Short: "Re-list a capability whenever its plugin files change",
	Long: `Watch the capability's search-path directories and re-render the
implementation listing after every burst of file changes. Edits within the
debounce window coalesce into a single re-scan, so an editor's
write-then-rename dance triggers one listing, not two.

Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := config.ParseKind(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		info := capabilityFor(kind)
		dirs := cfg.SearchPath(kind)

		rescan := func(ctx context.Context, changed []string) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if len(changed) > 0 {
				logger.Info("plugin files changed", "count", len(changed))
			}
			report := resolver.ListAvailable(info.desc, dirs, resolver.WithLogger(logger))
			renderReport(cmd.OutOrStdout(), info, report)
			return nil
		}

		// Initial render so the terminal is not empty until the first edit.
		if err := rescan(cmd.Context(), nil); err != nil {
			return err
		}

		w, err := watch.New(watch.Config{
			Dirs:     dirs,
			Debounce: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
			OnChange: rescan,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Watching for changes... (Ctrl+C to stop)"))
		return w.Run(cmd.Context())
	},
}
