package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// JSONWriter outputs summaries and records in JSON format.
// Key order follows the struct field order of the model types, and titles
// are written as-is: no HTML escaping, non-ASCII kept.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in JSON format.
// A nil summary is written as an empty one.
func (w *JSONWriter) Write(summary *model.Summary) (int, error) {
	if summary == nil {
		summary = model.NewSummary()
	}
	return w.writeJSON(summary)
}

// WriteRun outputs the run's summary. Run details are not part of the
// summary file format.
func (w *JSONWriter) WriteRun(run *model.Run) (int, error) {
	summary, err := summaryOf(run)
	if err != nil {
		return 0, err
	}
	return w.writeJSON(summary)
}

// WriteRecords outputs canonical records as a JSON array.
// A nil slice is written as [].
func (w *JSONWriter) WriteRecords(records []model.Record) (int, error) {
	if records == nil {
		records = make([]model.Record, 0)
	}
	return w.writeJSON(records)
}

// writeJSON marshals the given value to JSON and writes it to the output,
// followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}

	if err := enc.Encode(v); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}

// ReadRecords decodes a JSON array of canonical records.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	records := make([]model.Record, 0)
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		records = make([]model.Record, 0)
	}
	return records, nil
}
