package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// ErrNoSummary is returned when a run is written before it was summarized.
var ErrNoSummary = errors.New("run has no summary")

// Writer defines the interface for summary output.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.Summary) (int, error)

	// WriteRun outputs the run's summary together with whatever run
	// details the format shows (inputs, digests, timings).
	WriteRun(run *model.Run) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteRun outputs the run to all configured Writers.
func (m *MultiWriter) WriteRun(run *model.Run) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteRun(run)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// CreateFile creates or truncates path, creating parent directories as needed.
// Files are created with 0600 permissions: browsing history is personal data.
func CreateFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// FileWriter renders through the Writer built by newWriter into a file
// that is created only when the first report is written.
type FileWriter struct {
	path      string
	newWriter func(io.Writer) Writer
}

// NewFileWriter creates a FileWriter for path.
func NewFileWriter(path string, newWriter func(io.Writer) Writer) *FileWriter {
	return &FileWriter{path: path, newWriter: newWriter}
}

// Path returns the file the writer renders into.
func (f *FileWriter) Path() string {
	return f.path
}

// Write renders the summary into the file.
func (f *FileWriter) Write(summary *model.Summary) (int, error) {
	return f.write(func(w Writer) (int, error) {
		return w.Write(summary)
	})
}

// WriteRun renders the run into the file.
func (f *FileWriter) WriteRun(run *model.Run) (int, error) {
	if _, err := summaryOf(run); err != nil {
		return 0, err
	}
	return f.write(func(w Writer) (int, error) {
		return w.WriteRun(run)
	})
}

func (f *FileWriter) write(render func(Writer) (int, error)) (int, error) {
	file, err := CreateFile(f.path)
	if err != nil {
		return 0, err
	}

	n, err := render(f.newWriter(file))
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", f.path, cerr)
	}
	return n, err
}

// summaryOf returns the run's summary or ErrNoSummary.
func summaryOf(run *model.Run) (*model.Summary, error) {
	if run == nil || run.Summary == nil {
		return nil, ErrNoSummary
	}
	return run.Summary, nil
}
