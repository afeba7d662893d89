package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/aggregate"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/config"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/extract"
	hslog "github.com/KRNK97/ai-browser-tattoo-generator/internal/log"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/report"
)

// addExtractFlags registers the flags that control reading exports.
func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of input files read concurrently")
	cmd.Flags().Bool("decode-entities", false,
		"Decode HTML entities such as &amp; in titles")
}

// addSummaryFlags registers the flags that control aggregation and the
// console report.
func addSummaryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top", model.DefaultTopN,
		"Number of domains kept in the summary")
	cmd.Flags().Int("titles", model.DefaultTitlesPerDomain,
		"Number of representative titles per domain")
	cmd.Flags().Int("samples", model.DefaultSampleSize,
		"Number of sample titles")
	cmd.Flags().Int("min-title-length", model.DefaultMinTitleLength,
		"Cleaned titles must be longer than this to be grouped")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the report as Markdown instead of plain text")
	cmd.Flags().Bool("show-samples", false,
		"List the sample titles in the text report")
	cmd.Flags().Int("title-width", report.DefaultTitleWidth,
		"Characters shown before a report title is cut")
	cmd.Flags().StringP("report", "r", "",
		"Also write the Markdown report to this file")
}

// addCommonFlags registers the flags shared by every processing command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Settings file path (default: .histsum, then XDG config, then ~/.histsum)")
	cmd.Flags().BoolP("quiet", "q", false,
		"Suppress progress lines and the console report")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the settings file and the
// command flags, in that order of precedence. Only flags the user set
// override the settings file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"top", &cfg.TopN},
		{"titles", &cfg.TitlesPerDomain},
		{"samples", &cfg.SampleSize},
		{"min-title-length", &cfg.MinTitleLength},
		{"jobs", &cfg.Jobs},
		{"title-width", &cfg.TitleWidth},
	}
	for _, f := range ints {
		if cmd.Flags().Lookup(f.name) == nil || !cmd.Flags().Changed(f.name) {
			continue
		}
		if *f.dst, err = cmd.Flags().GetInt(f.name); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Lookup("decode-entities") != nil && cmd.Flags().Changed("decode-entities") {
		if cfg.DecodeEntities, err = cmd.Flags().GetBool("decode-entities"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Lookup("markdown") != nil {
		if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Lookup("show-samples") != nil && cmd.Flags().Changed("show-samples") {
		if cfg.ShowSamples, err = cmd.Flags().GetBool("show-samples"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Lookup("report") != nil && cmd.Flags().Changed("report") {
		if cfg.ReportFile, err = cmd.Flags().GetString("report"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("log-format") {
		if cfg.LogFormat, err = cmd.Flags().GetString("log-format"); err != nil {
			return nil, err
		}
	}
	if cfg.Quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.Inputs = args
	}

	return cfg, nil
}

// setupLogger creates a structured logger for the configured format
// and verbosity.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return hslog.NewJSONLogger(w, cfg.Verbose)
	}
	return hslog.NewLogger(w, cfg.Verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// newExtractor builds the record extractor from the configuration.
func newExtractor(cfg *config.Config, logger *slog.Logger) *extract.Extractor {
	return extract.NewExtractor(
		extract.WithFieldMap(cfg.Fields),
		extract.WithEntityDecoding(cfg.DecodeEntities),
		extract.WithLogger(logger),
	)
}

// newAggregator builds the domain aggregator from the configuration.
func newAggregator(cfg *config.Config) *aggregate.Aggregator {
	return aggregate.NewAggregator(
		aggregate.WithTopN(cfg.TopN),
		aggregate.WithTitlesPerDomain(cfg.TitlesPerDomain),
		aggregate.WithSampleSize(cfg.SampleSize),
		aggregate.WithMinTitleLength(cfg.MinTitleLength),
	)
}

// newReportWriter returns the writer for the console report and the
// optional Markdown report file, or nil when neither is wanted.
func newReportWriter(cfg *config.Config, w io.Writer) report.Writer {
	markdown := func(out io.Writer) report.Writer {
		return report.NewMarkdownWriter(out, report.WithChartDomains(cfg.ChartDomains))
	}

	writers := make([]report.Writer, 0, 2)
	if !cfg.Quiet {
		if cfg.MarkdownReport {
			writers = append(writers, markdown(w))
		} else {
			writers = append(writers, report.NewSimpleWriter(w,
				report.WithMaxDomains(cfg.ConsoleDomains),
				report.WithMaxTitles(cfg.ConsoleTitles),
				report.WithTitleWidth(cfg.TitleWidth),
				report.WithSamples(cfg.ShowSamples),
			))
		}
	}
	if cfg.ReportFile != "" {
		writers = append(writers, report.NewFileWriter(cfg.ReportFile, markdown))
	}

	switch len(writers) {
	case 0:
		return nil
	case 1:
		return writers[0]
	default:
		return report.NewMultiWriter(writers...)
	}
}

// progress prints a progress line unless quiet mode is enabled.
func progress(cmd *cobra.Command, cfg *config.Config, format string, a ...any) {
	if cfg.Quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", a...)
}
