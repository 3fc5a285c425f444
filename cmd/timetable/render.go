package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/config"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/chart"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/logger"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/snapshot"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/timeline"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatPDF  = "pdf"
)

type renderOptions struct {
	input    string
	date     string
	hub      string
	tick     int
	format   string
	output   string
	width    int
	logLevel string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Render weekly fleet timetables from schedule snapshots",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRenderCmd(stdout, stderr))

	return root
}

func newRenderCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out a weekly schedule snapshot as text or PDF",
		Example: "  timetable render --input week.json\n" +
			"  timetable render --input week.json --hub DXB --format pdf --output week.pdf",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(logger.NewStructuredLogger(stderr, config.LogLeveler(opts.logLevel)))

			return runRender(cmd.Context(), opts, stdout)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Weekly schedule snapshot (JSON)")
	cmd.Flags().StringVar(&opts.date, "date", "", "Date inside the snapshot week (YYYY-MM-DD), checked against the snapshot range")
	cmd.Flags().StringVar(&opts.hub, "hub", timeline.DefaultHub, "Hub airport code used for turnaround pairing")
	cmd.Flags().IntVar(&opts.tick, "tick", timeline.DefaultTickMinutes, "Gridline spacing in minutes")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text or pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&opts.width, "width", chart.DefaultTextWidth, "Cells per day row in text output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRender(ctx context.Context, opts renderOptions, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format := strings.ToLower(opts.format)
	if format != formatText && format != formatPDF {
		return fmt.Errorf("unknown format %q, want %s or %s", opts.format, formatText, formatPDF)
	}

	provider := snapshot.NewProvider(scheduleprovider.ScheduleProviderConfig{URL: opts.input})

	schedule, err := provider.FetchWeek(ctx, opts.date)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	timetable := timeline.NewEngine(strings.ToUpper(opts.hub), opts.tick).RenderWeek(schedule)

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if format == formatPDF {
		return chart.RenderPDF(out, timetable)
	}

	return chart.RenderText(out, timetable, opts.width)
}
