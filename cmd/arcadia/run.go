package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"arcadia/config"
	"arcadia/service"
)

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	sc, err := service.LoadScenario(args[0])
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	reg := prometheus.NewRegistry()
	arcade := service.FromConfig(cfg, logger, reg)

	if err := arcade.Run(sc, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("scenario %s: %w", args[0], err)
	}
	if showStats {
		return printStats(cmd.OutOrStdout(), reg)
	}
	return nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// printStats writes every counter and gauge in reg as "name{labels} value",
// sorted by name and labels.
func printStats(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), labelString(m.GetLabel()), v))
		}
	}
	sort.Strings(lines)

	if _, err := fmt.Fprintln(w, "-- stats --"); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}

