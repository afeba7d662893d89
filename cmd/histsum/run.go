package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/pipeline"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [export.json...]",
		Short: "Extract records and summarize them in one go",
		Long: `Run performs extraction and summarization back to back.

The normalized records are written to the records file first; the summary is
then computed from that same record set and written to the summary file, so
"histsum run" produces exactly what "histsum extract" followed by
"histsum summarize" would.

Examples:
  # Read history.json, write takeout_history_parsed.json and history_summary.json
  histsum run

  # Use custom output locations
  histsum run takeout.json --records out/records.json -o out/summary.json

  # Print the report as Markdown
  histsum run takeout.json -m > report.md`,
		RunE: runRunCmd,
	}

	addCommonFlags(cmd)
	addExtractFlags(cmd)
	addSummaryFlags(cmd)
	cmd.Flags().String("records", "",
		"Records file path (default from settings, takeout_history_parsed.json)")
	cmd.Flags().StringP("output", "o", "",
		"Summary file path (default from settings, history_summary.json)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if records, _ := cmd.Flags().GetString("records"); records != "" {
		cfg.RecordsPath = records
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
	run.RecordsPath = cfg.RecordsPath
	run.SummaryPath = cfg.SummaryPath

	logger.Debug("starting run",
		"inputs", len(cfg.Inputs),
		"records", cfg.RecordsPath,
		"summary", cfg.SummaryPath,
		"settings", cfg.ConfigFilePath,
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewExtractStep(newExtractor(cfg, logger), cfg.Jobs, logger),
		pipeline.NewWriteRecordsStep(),
		pipeline.NewSummarizeStep(newAggregator(cfg)),
		pipeline.NewWriteSummaryStep(),
	)
	if w := newReportWriter(cfg, cmd.OutOrStdout()); w != nil {
		p.AddStep(pipeline.NewReportStep(w))
	}
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	progress(cmd, cfg, "\nRecords written to: %s", run.RecordsPath)
	progress(cmd, cfg, "Summary written to: %s", run.SummaryPath)
	if cfg.ReportFile != "" {
		progress(cmd, cfg, "Report written to: %s", cfg.ReportFile)
	}
	return nil
}
