package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() to tell them apart.
var (
	// ErrNoInput is returned when no input file is specified.
	ErrNoInput = errors.New("no input specified: provide at least one file")

	// ErrInvalidTopN is returned when the number of ranked domains is not positive.
	ErrInvalidTopN = errors.New("invalid top domain count: must be positive")

	// ErrInvalidTitlesPerDomain is returned when the number of titles per
	// domain is not positive.
	ErrInvalidTitlesPerDomain = errors.New("invalid titles per domain: must be positive")

	// ErrInvalidSampleSize is returned when the sample size is negative.
	// Use 0 to omit sample titles.
	ErrInvalidSampleSize = errors.New("invalid sample size: must be non-negative")

	// ErrInvalidMinTitleLength is returned when the minimum title length is negative.
	ErrInvalidMinTitleLength = errors.New("invalid minimum title length: must be non-negative")

	// ErrInvalidJobs is returned when the number of concurrent extractions is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrEmptyFieldChain is returned when a field chain in the settings file
	// lists no keys.
	ErrEmptyFieldChain = errors.New("empty field chain: list at least one key")

	// ErrEmptyOutputPath is returned when an output path is set to "".
	ErrEmptyOutputPath = errors.New("empty output path")

	// ErrInvalidReportLimit is returned when a console report limit is not
	// positive or the chart domain count is negative.
	ErrInvalidReportLimit = errors.New("invalid report limit")

	// ErrInvalidLogFormat is returned when the log format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
