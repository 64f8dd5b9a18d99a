// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List every discoverable implementation of a capability",
	Long: `List every implementation found on the capability's search path,
followed by the compiled-in fallbacks. Files that fail to load are shown
with their errors instead of being silently skipped, so a missing
implementation is always explainable from this output.

Kinds: strategies, pairlists, hyperopt-losses`,
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
		report := resolver.ListAvailable(info.desc, cfg.SearchPath(kind), resolver.WithLogger(logger))
		renderReport(cmd.OutOrStdout(), info, report)
		return nil
	},
}

// renderReport prints the scan result as a table, then any load failures.
func renderReport(w io.Writer, info capabilityInfo, report *resolver.ScanReport) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtitleStyle).
		Headers("NAME", "SOURCE", "STATUS", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, impl := range report.Implementations {
		t.Row(impl.Name, impl.Path, SuccessStyle.Render("ok"), impl.Description)
	}
	for _, name := range info.builtins() {
		t.Row(name, SubtitleStyle.Render("built-in"), SuccessStyle.Render("ok"), "")
	}
	for _, f := range report.Failures {
		t.Row("-", f.Path, ErrorStyle.Render("load failed"), "")
	}

	fmt.Fprintln(w, t)

	if len(report.Failures) > 0 {
		fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("%d plugin file(s) failed to load:", len(report.Failures))))
		for _, f := range report.Failures {
			fmt.Fprintf(w, "  %s %s: %v\n", ErrorStyle.Render("✗"), f.Path, f.Err)
		}
	}
}
