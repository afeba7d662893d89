package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/aggregate"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/extract"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/report"
)

// Step names.
const (
	StepExtract      = "extract"
	StepLoadRecords  = "load_records"
	StepWriteRecords = "write_records"
	StepSummarize    = "summarize"
	StepWriteSummary = "write_summary"
	StepReport       = "report"
)

// ExtractStep reads every input export and replaces run.Records with the
// extracted records, concatenated in input order.
type ExtractStep struct {
	batch  *BatchProcessor
	logger *slog.Logger
}

// NewExtractStep creates an extraction step.
// jobs bounds how many inputs are parsed at once.
func NewExtractStep(extractor *extract.Extractor, jobs int, logger *slog.Logger) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{
		batch: NewBatchProcessor(extractor.Extract,
			WithConcurrency(jobs),
			WithBatchLogger(logger),
		),
		logger: logger,
	}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return StepExtract
}

// Do executes the extraction step.
func (s *ExtractStep) Do(ctx context.Context, run *model.Run) error {
	if err := loadInto(ctx, s.batch, run); err != nil {
		return err
	}
	s.logger.Debug("extraction finished",
		"files", len(run.Inputs),
		"records", len(run.Records),
	)
	return nil
}

// LoadRecordsStep reads canonical records files back into run.Records.
// It is the entry point when aggregation runs on its own.
type LoadRecordsStep struct {
	batch *BatchProcessor
}

// NewLoadRecordsStep creates a step that reads records files.
func NewLoadRecordsStep(logger *slog.Logger) *LoadRecordsStep {
	if logger == nil {
		logger = slog.Default()
	}
	parse := func(data []byte) ([]model.Record, error) {
		return report.ReadRecords(bytes.NewReader(data))
	}
	return &LoadRecordsStep{
		batch: NewBatchProcessor(parse, WithConcurrency(1), WithBatchLogger(logger)),
	}
}

// Name returns the step name.
func (s *LoadRecordsStep) Name() string {
	return StepLoadRecords
}

// Do executes the load step.
func (s *LoadRecordsStep) Do(ctx context.Context, run *model.Run) error {
	return loadInto(ctx, s.batch, run)
}

// loadInto processes run.Inputs and stores records and digests on run.
func loadInto(ctx context.Context, batch *BatchProcessor, run *model.Run) error {
	results, err := batch.ProcessFiles(ctx, run.Inputs)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		total += len(r.Records)
	}

	records := make([]model.Record, 0, total)
	for _, r := range results {
		records = append(records, r.Records...)
		run.InputDigests[r.Path] = r.Digest
	}
	run.Records = records
	return nil
}

// WriteRecordsStep writes run.Records to run.RecordsPath.
type WriteRecordsStep struct{}

// NewWriteRecordsStep creates a step that writes the records file.
func NewWriteRecordsStep() *WriteRecordsStep {
	return &WriteRecordsStep{}
}

// Name returns the step name.
func (s *WriteRecordsStep) Name() string {
	return StepWriteRecords
}

// Do executes the write step.
func (s *WriteRecordsStep) Do(_ context.Context, run *model.Run) error {
	f, err := report.CreateFile(run.RecordsPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := report.NewJSONWriter(f, report.WithPrettyPrint()).WriteRecords(run.Records); err != nil {
		return fmt.Errorf("failed to write %s: %w", run.RecordsPath, err)
	}
	return f.Close()
}

// SummarizeStep aggregates run.Records into run.Summary.
type SummarizeStep struct {
	aggregator *aggregate.Aggregator
}

// NewSummarizeStep creates an aggregation step.
func NewSummarizeStep(aggregator *aggregate.Aggregator) *SummarizeStep {
	if aggregator == nil {
		aggregator = aggregate.NewAggregator()
	}
	return &SummarizeStep{aggregator: aggregator}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return StepSummarize
}

// Do executes the aggregation step.
func (s *SummarizeStep) Do(_ context.Context, run *model.Run) error {
	run.Summary = s.aggregator.Summarize(run.Records)
	return nil
}

// WriteSummaryStep writes run.Summary to run.SummaryPath.
type WriteSummaryStep struct{}

// NewWriteSummaryStep creates a step that writes the summary file.
func NewWriteSummaryStep() *WriteSummaryStep {
	return &WriteSummaryStep{}
}

// Name returns the step name.
func (s *WriteSummaryStep) Name() string {
	return StepWriteSummary
}

// Do executes the write step.
func (s *WriteSummaryStep) Do(_ context.Context, run *model.Run) error {
	if run.Summary == nil {
		return report.ErrNoSummary
	}

	f, err := report.CreateFile(run.SummaryPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := report.NewJSONWriter(f, report.WithPrettyPrint()).Write(run.Summary); err != nil {
		return fmt.Errorf("failed to write %s: %w", run.SummaryPath, err)
	}
	return f.Close()
}

// ReportStep renders the run through a report.Writer.
type ReportStep struct {
	writer report.Writer
}

// NewReportStep creates a report step writing to w.
func NewReportStep(w report.Writer) *ReportStep {
	return &ReportStep{writer: w}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return StepReport
}

// Do executes the report step.
func (s *ReportStep) Do(_ context.Context, run *model.Run) error {
	_, err := s.writer.WriteRun(run)
	return err
}
