package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/extract"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "histsum"

	// DefaultInputFile is read when no input is given on the command line.
	DefaultInputFile = "history.json"

	// DefaultRecordsFile is the intermediate file written by extraction.
	DefaultRecordsFile = "takeout_history_parsed.json"

	// DefaultSummaryFile is the summary file written by aggregation.
	DefaultSummaryFile = "history_summary.json"

	// DefaultJobs is the number of input files extracted concurrently.
	DefaultJobs = 4
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all runtime options for one histsum invocation.
// It is built from defaults, then the settings file, then CLI flags,
// and passed down explicitly rather than kept in global state.
type Config struct {
	// Inputs are the files to read. For extraction these are export
	// documents; for summarizing alone this is a records file.
	Inputs []string

	// RecordsPath is where the canonical records are written (and read
	// back from by the summarize command).
	RecordsPath string

	// SummaryPath is where the summary JSON is written.
	SummaryPath string

	// TopN is the number of domains kept in the summary.
	TopN int

	// TitlesPerDomain is the number of representative titles per domain.
	TitlesPerDomain int

	// SampleSize is the number of sample titles kept in the summary.
	SampleSize int

	// MinTitleLength is the cleaned-title length a title must exceed to
	// be grouped.
	MinTitleLength int

	// Jobs is the number of input files extracted concurrently.
	Jobs int

	// Fields are the key chains used to locate canonical fields.
	Fields extract.FieldMap

	// DecodeEntities enables HTML entity decoding of titles.
	DecodeEntities bool

	// Verbose enables debug log output.
	Verbose bool

	// Quiet suppresses the console report and progress lines.
	Quiet bool

	// MarkdownReport renders the console report as Markdown instead of text.
	MarkdownReport bool

	// ReportFile, when set, also writes the Markdown report to this path.
	ReportFile string

	// ConsoleDomains is the number of domains the text report lists.
	ConsoleDomains int

	// ConsoleTitles is the number of titles the text report lists per domain.
	ConsoleTitles int

	// TitleWidth is the character count after which report titles are cut.
	TitleWidth int

	// ShowSamples adds the sample titles to the text report.
	ShowSamples bool

	// ChartDomains is the number of pie chart slices in the Markdown
	// report. 0 disables the chart.
	ChartDomains int

	// LogFormat selects the log handler: LogFormatText or LogFormatJSON.
	LogFormat string

	// ConfigFilePath is the settings file given with --config.
	// When empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Inputs:          []string{DefaultInputFile},
		RecordsPath:     DefaultRecordsFile,
		SummaryPath:     DefaultSummaryFile,
		TopN:            model.DefaultTopN,
		TitlesPerDomain: model.DefaultTitlesPerDomain,
		SampleSize:      model.DefaultSampleSize,
		MinTitleLength:  model.DefaultMinTitleLength,
		Jobs:            DefaultJobs,
		Fields:          extract.DefaultFieldMap(),
		ConsoleDomains:  report.DefaultConsoleDomains,
		ConsoleTitles:   report.DefaultConsoleTitles,
		TitleWidth:      report.DefaultTitleWidth,
		ChartDomains:    report.DefaultChartDomains,
		LogFormat:       LogFormatText,
	}
}

// XDGConfigDir returns the XDG config directory for histsum.
// On Linux: ~/.config/histsum
// On macOS: ~/Library/Application Support/histsum
// On Windows: %APPDATA%\histsum
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile overlays the values set in a settings file.
// Fields absent from the file keep their current value.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.Summary.TopN != nil {
		c.TopN = *f.Summary.TopN
	}
	if f.Summary.TitlesPerDomain != nil {
		c.TitlesPerDomain = *f.Summary.TitlesPerDomain
	}
	if f.Summary.SampleSize != nil {
		c.SampleSize = *f.Summary.SampleSize
	}
	if f.Summary.MinTitleLength != nil {
		c.MinTitleLength = *f.Summary.MinTitleLength
	}

	// A chain listed in the file replaces the default even when empty,
	// so that Validate can reject it.
	if f.Extract.Fields.URL != nil {
		c.Fields.URL = f.Extract.Fields.URL
	}
	if f.Extract.Fields.Title != nil {
		c.Fields.Title = f.Extract.Fields.Title
	}
	if f.Extract.Fields.Timestamp != nil {
		c.Fields.Timestamp = f.Extract.Fields.Timestamp
	}
	if f.Extract.DecodeEntities != nil {
		c.DecodeEntities = *f.Extract.DecodeEntities
	}

	if f.Output.Records != nil {
		c.RecordsPath = *f.Output.Records
	}
	if f.Output.Summary != nil {
		c.SummaryPath = *f.Output.Summary
	}

	if f.Report.Domains != nil {
		c.ConsoleDomains = *f.Report.Domains
	}
	if f.Report.Titles != nil {
		c.ConsoleTitles = *f.Report.Titles
	}
	if f.Report.TitleWidth != nil {
		c.TitleWidth = *f.Report.TitleWidth
	}
	if f.Report.ShowSamples != nil {
		c.ShowSamples = *f.Report.ShowSamples
	}
	if f.Report.ChartDomains != nil {
		c.ChartDomains = *f.Report.ChartDomains
	}
	if f.Report.File != nil {
		c.ReportFile = *f.Report.File
	}

	if f.Log.Format != nil {
		c.LogFormat = *f.Log.Format
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found, checked once before any file is read.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.TitlesPerDomain <= 0 {
		return ErrInvalidTitlesPerDomain
	}

	if c.SampleSize < 0 {
		return ErrInvalidSampleSize
	}

	if c.MinTitleLength < 0 {
		return ErrInvalidMinTitleLength
	}

	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}

	if name := c.Fields.Empty(); name != "" {
		return fmt.Errorf("%w: %s", ErrEmptyFieldChain, name)
	}

	if c.RecordsPath == "" {
		return fmt.Errorf("%w: records", ErrEmptyOutputPath)
	}
	if c.SummaryPath == "" {
		return fmt.Errorf("%w: summary", ErrEmptyOutputPath)
	}

	if c.ConsoleDomains <= 0 {
		return fmt.Errorf("%w: domains must be positive", ErrInvalidReportLimit)
	}
	if c.ConsoleTitles <= 0 {
		return fmt.Errorf("%w: titles must be positive", ErrInvalidReportLimit)
	}
	if c.TitleWidth <= 0 {
		return fmt.Errorf("%w: title width must be positive", ErrInvalidReportLimit)
	}
	if c.ChartDomains < 0 {
		return fmt.Errorf("%w: chart domains must be non-negative", ErrInvalidReportLimit)
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}
