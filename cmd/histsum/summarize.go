package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/pipeline"
)

// NewSummarizeCmd creates the summarize command.
func NewSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [records.json]",
		Short: "Group records by domain and write the summary",
		Long: `Summarize reads a records file written by "histsum extract" and writes
the domain summary.

Titles are cleaned (lowercased, punctuation removed, whitespace collapsed) and
grouped by domain. Domains are ranked by their number of distinct titles and
each keeps its longest titles as representatives.

Examples:
  # Read takeout_history_parsed.json and write history_summary.json
  histsum summarize

  # Keep the top 10 domains with 3 titles each
  histsum summarize records.json --top 10 --titles 3 -o summary.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummarizeCmd,
	}

	addCommonFlags(cmd)
	addSummaryFlags(cmd)
	cmd.Flags().StringP("output", "o", "",
		"Summary file path (default from settings, history_summary.json)")

	return cmd
}

// runSummarizeCmd executes the summarize command.
func runSummarizeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		cfg.Inputs = []string{cfg.RecordsPath}
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.SummaryPath = output
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	ctx, cancel := signalContext(logger)
	defer cancel()

	run := model.NewRun(cfg.Inputs...)
	run.SummaryPath = cfg.SummaryPath

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewLoadRecordsStep(logger),
		pipeline.NewSummarizeStep(newAggregator(cfg)),
		pipeline.NewWriteSummaryStep(),
	)
	if w := newReportWriter(cfg, cmd.OutOrStdout()); w != nil {
		p.AddStep(pipeline.NewReportStep(w))
	}
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	progress(cmd, cfg, "\nSummary written to: %s", run.SummaryPath)
	if cfg.ReportFile != "" {
		progress(cmd, cfg, "Report written to: %s", cfg.ReportFile)
	}
	return nil
}
