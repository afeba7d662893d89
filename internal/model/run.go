package model

import (
	"time"
)

// Run holds the state of one invocation as it passes through the pipeline.
// A Run is created per command execution and discarded afterwards.
type Run struct {
	// Inputs are the export files to extract, in the order given.
	Inputs []string

	// RecordsPath is the intermediate file holding canonical records.
	RecordsPath string

	// SummaryPath is the final summary file.
	SummaryPath string

	// Records are the canonical records, in input order.
	Records []Record

	// Summary is set once the aggregation step has run.
	Summary *Summary

	// InputDigests maps each input path to the hex SHA3-256 digest of its bytes.
	InputDigests map[string]string

	// StartedAt is when the run was created.
	StartedAt time.Time

	// PerformedSteps lists the pipeline steps that completed, in order.
	PerformedSteps []string

	// Error holds the first error a step reported, if any.
	Error error
}

// NewRun creates a Run for the given inputs.
func NewRun(inputs ...string) *Run {
	return &Run{
		Inputs:         inputs,
		Records:        make([]Record, 0),
		InputDigests:   make(map[string]string),
		StartedAt:      time.Now(),
		PerformedSteps: make([]string, 0),
	}
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartedAt)
}

// Performed reports whether the named step completed.
func (r *Run) Performed(step string) bool {
	for _, s := range r.PerformedSteps {
		if s == step {
			return true
		}
	}
	return false
}
