package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/pipeline"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [export.json...]",
		Short: "Normalize exports into url/title/timestamp records",
		Long: `Extract reads one or more browsing-history exports and writes the
normalized records as a pretty-printed JSON array.

An export is either a JSON array of entries or a JSON object whose values are
arrays of entries. Entries without a title are dropped. Records from several
files are concatenated in the order the files are given.

Examples:
  # Read history.json and write takeout_history_parsed.json
  histsum extract

  # Read two exports into a custom file
  histsum extract chrome.json takeout.json -o records.json`,
		RunE: runExtractCmd,
	}

	addCommonFlags(cmd)
	addExtractFlags(cmd)
	cmd.Flags().StringP("output", "o", "",
		"Records file path (default from settings, takeout_history_parsed.json)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.RecordsPath = output
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	ctx, cancel := signalContext(logger)
	defer cancel()

	run := model.NewRun(cfg.Inputs...)
	run.RecordsPath = cfg.RecordsPath

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewExtractStep(newExtractor(cfg, logger), cfg.Jobs, logger),
		pipeline.NewWriteRecordsStep(),
	)
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	progress(cmd, cfg, "Extracted %d records from %d file(s)", len(run.Records), len(run.Inputs))
	progress(cmd, cfg, "Records written to: %s", run.RecordsPath)
	return nil
}
