// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Shmel999/FREQTRADE/internal/config"
	"github.com/Shmel999/FREQTRADE/internal/notify"
	"github.com/Shmel999/FREQTRADE/internal/resolver"
	"github.com/Shmel999/FREQTRADE/pkg/hyperoptloss"
	"github.com/Shmel999/FREQTRADE/pkg/pairlist"
	"github.com/Shmel999/FREQTRADE/pkg/strategy"
)

// showParams holds the raw --param key=value flags.
var showParams []string

var showCmd = &cobra.Command{
	Use:   "show <kind> <name>",
	Short: "Resolve one implementation by name and show where it came from",
	Long: `Resolve the named implementation across the search path and report its
provenance: the file it was loaded from, or "built-in" when a compiled-in
fallback matched. Parameters passed with --param are forwarded to the
implementation and may override declared values.

The resolution is strict: if two files declare the same name for this
capability, the command fails listing both files rather than picking one.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := config.ParseKind(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		params, err := parseParams(showParams)
		if err != nil {
			return err
		}

		hub := notify.NewHub(logger)
		if cfg.Notify.Enabled {
			hub.Register(notify.NewLogSink(logger))
		}
		defer func() {
			if cleanupErr := hub.Cleanup(); cleanupErr != nil {
				logger.Warn("notification cleanup failed", "err", cleanupErr)
			}
		}()

		return runShow(cmd.OutOrStdout(), cfg, hub, kind, args[1], params)
	},
}

func init() {
	showCmd.Flags().StringArrayVar(&showParams, "param", nil, "implementation parameter as key=value (repeatable)")
}

// runShow resolves name for kind and renders its provenance and details.
func runShow(w io.Writer, cfg *config.Config, hub *notify.Hub, kind config.Kind, name string, params resolver.Params) error {
	info := capabilityFor(kind)
	opts := []resolver.Option{resolver.WithLogger(logger)}

	var (
		path    string
		details [][2]string
	)

	switch kind {
	case config.KindPairlist:
		res, err := pairlist.Load(cfg, name, params, opts...)
		if err != nil {
			return notifyAmbiguity(hub, info, name, err)
		}
		path = res.Path
		sample := []string{"BTC/USDT", "ETH/USDT", "DOGE/USDT"}
		details = append(details,
			[2]string{"Sample input", strings.Join(sample, ", ")},
			[2]string{"Sample output", strings.Join(res.Instance.Filter(sample), ", ")},
		)

	case config.KindHyperoptLoss:
		res, err := hyperoptloss.Load(cfg, name, params, opts...)
		if err != nil {
			return notifyAmbiguity(hub, info, name, err)
		}
		path = res.Path
		sample := hyperoptloss.Result{TradeCount: 100, ProfitTotal: 0.25, MaxDrawdown: 0.10, AvgTradeMinutes: 90}
		details = append(details,
			[2]string{"Loss (sample result)", strconv.FormatFloat(res.Instance.Loss(sample), 'f', 4, 64)},
		)

	default:
		res, err := strategy.Load(cfg, name, params, opts...)
		if err != nil {
			return notifyAmbiguity(hub, info, name, err)
		}
		path = res.Path
		s := res.Instance
		details = append(details,
			[2]string{"Timeframe", s.Timeframe()},
			[2]string{"Stoploss", strconv.FormatFloat(s.Stoploss(), 'f', -1, 64)},
			[2]string{"Minimal ROI", formatROI(s.MinimalROI())},
		)
	}

	hub.Send(notify.ResolvedMessage(info.desc.TypeLabel, name, path))

	source := path
	if source == "" {
		source = "built-in"
	}
	fmt.Fprintln(w, TitleStyle.Render(name))
	fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("Kind:"), info.desc.TypeLabel)
	fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("Source:"), source)
	for _, kv := range details {
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render(kv[0]+":"), kv[1])
	}

	if desc := lookupDescription(info, cfg.SearchPath(kind), name, path); desc != "" {
		rendered, err := glamour.Render(desc, "auto")
		if err != nil {
			fmt.Fprintln(w, desc)
		} else {
			fmt.Fprint(w, rendered)
		}
	}
	return nil
}

// notifyAmbiguity forwards ambiguity errors to the hub before returning
// them, so a collision is visible on every sink, not just stderr.
func notifyAmbiguity(hub *notify.Hub, info capabilityInfo, name string, err error) error {
	var ambErr *resolver.AmbiguityError
	if hub != nil && errors.As(err, &ambErr) {
		hub.Send(notify.AmbiguousMessage(info.desc.TypeLabel, name, ambErr.Paths))
	}
	return err
}

// lookupDescription finds the declared description of the implementation
// that won the resolution. Built-ins carry no declaration, so the empty
// string comes back for them.
func lookupDescription(info capabilityInfo, searchPath []string, name, path string) string {
	if path == "" {
		return ""
	}
	report := resolver.ListAvailable(info.desc, searchPath, resolver.WithLogger(logger))
	for _, impl := range report.Implementations {
		if impl.Name == name && impl.Path == path {
			return impl.Description
		}
	}
	return ""
}

// formatROI renders the minimal-ROI table in ascending holding-time order.
func formatROI(roi map[string]float64) string {
	keys := make([]string, 0, len(roi))
	for k := range roi {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%sm: %.2f%%", k, roi[k]*100))
	}
	return strings.Join(parts, ", ")
}

// parseParams converts repeated key=value flags into resolver params,
// decoding numbers and booleans so declarations receive typed overrides.
func parseParams(raw []string) (resolver.Params, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(resolver.Params, len(raw))
	for _, kv := range raw {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q (expected key=value)", kv)
		}
		switch {
		case value == "true" || value == "false":
			params[key] = value == "true"
		default:
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				params[key] = f
			} else {
				params[key] = value
			}
		}
	}
	return params, nil
}
