package config

// File represents the structure of the settings file.
// Every value is optional; unset values keep their defaults.
type File struct {
	// Summary controls aggregation limits.
	Summary SummarySettings `yaml:"summary,omitempty"`

	// Extract controls how export documents are read.
	Extract ExtractSettings `yaml:"extract,omitempty"`

	// Output sets the default output file paths.
	Output OutputSettings `yaml:"output,omitempty"`

	// Report controls the console and Markdown reports.
	Report ReportSettings `yaml:"report,omitempty"`

	// Log controls diagnostic output.
	Log LogSettings `yaml:"log,omitempty"`
}

// SummarySettings holds the aggregation limits.
type SummarySettings struct {
	TopN            *int `yaml:"top_n,omitempty"`
	TitlesPerDomain *int `yaml:"titles_per_domain,omitempty"`
	SampleSize      *int `yaml:"sample_size,omitempty"`
	MinTitleLength  *int `yaml:"min_title_length,omitempty"`
}

// ExtractSettings holds extraction options.
type ExtractSettings struct {
	// Fields override the key chains per canonical field.
	Fields FieldSettings `yaml:"fields,omitempty"`

	// DecodeEntities turns "&amp;" style entities in titles into text.
	DecodeEntities *bool `yaml:"decode_entities,omitempty"`
}

// FieldSettings lists source keys per canonical field, highest priority first.
type FieldSettings struct {
	URL       []string `yaml:"url,omitempty"`
	Title     []string `yaml:"title,omitempty"`
	Timestamp []string `yaml:"timestamp,omitempty"`
}

// OutputSettings holds output file paths.
type OutputSettings struct {
	Records *string `yaml:"records,omitempty"`
	Summary *string `yaml:"summary,omitempty"`
}

// ReportSettings holds report layout options.
type ReportSettings struct {
	Domains      *int    `yaml:"domains,omitempty"`
	Titles       *int    `yaml:"titles,omitempty"`
	TitleWidth   *int    `yaml:"title_width,omitempty"`
	ShowSamples  *bool   `yaml:"show_samples,omitempty"`
	ChartDomains *int    `yaml:"chart_domains,omitempty"`
	File         *string `yaml:"file,omitempty"`
}

// LogSettings holds logging options.
type LogSettings struct {
	// Format is "text" or "json".
	Format *string `yaml:"format,omitempty"`
}
