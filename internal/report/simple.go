package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// Console view limits.
const (
	// DefaultConsoleDomains is the number of domains listed.
	DefaultConsoleDomains = 10

	// DefaultConsoleTitles is the number of titles listed per domain.
	DefaultConsoleTitles = 3

	// DefaultTitleWidth is the number of characters shown before a title is cut.
	DefaultTitleWidth = 80
)

// SimpleWriter outputs human-readable text summaries for the terminal.
type SimpleWriter struct {
	baseWriter

	// maxDomains is the number of ranked domains listed.
	maxDomains int

	// maxTitles is the number of titles listed per domain.
	maxTitles int

	// titleWidth is the character count after which titles are truncated.
	titleWidth int

	// showSamples enables the sample titles section.
	showSamples bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithMaxDomains sets how many ranked domains are listed.
func WithMaxDomains(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.maxDomains = n
	}
}

// WithMaxTitles sets how many titles are listed per domain.
func WithMaxTitles(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.maxTitles = n
	}
}

// WithTitleWidth sets the character count after which titles are truncated.
func WithTitleWidth(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.titleWidth = n
	}
}

// WithSamples enables the sample titles section.
func WithSamples(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showSamples = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		maxDomains: DefaultConsoleDomains,
		maxTitles:  DefaultConsoleTitles,
		titleWidth: DefaultTitleWidth,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	return w.write(nil, summary)
}

// WriteRun outputs the summary preceded by the run's inputs and timing.
func (w *SimpleWriter) WriteRun(run *model.Run) (int, error) {
	summary, err := summaryOf(run)
	if err != nil {
		return 0, err
	}
	return w.write(run, summary)
}

func (w *SimpleWriter) write(run *model.Run, summary *model.Summary) (int, error) {
	if summary == nil {
		summary = model.NewSummary()
	}

	var sb strings.Builder

	w.writeHeader(&sb, run)
	w.writeTotals(&sb, summary)
	w.writeDomains(&sb, summary)
	if w.showSamples {
		w.writeSamples(&sb, summary)
	}
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the banner and, for a run, its inputs.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, run *model.Run) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    BROWSING HISTORY SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if run == nil {
		return
	}

	for _, in := range run.Inputs {
		fmt.Fprintf(sb, "Input:   %s\n", in)
		if digest := run.InputDigests[in]; digest != "" {
			fmt.Fprintf(sb, "SHA3:    %s\n", digest)
		}
	}
	fmt.Fprintf(sb, "Elapsed: %s\n", run.Elapsed().Round(time.Millisecond))
	sb.WriteString("\n")
}

// writeTotals writes the headline numbers.
func (w *SimpleWriter) writeTotals(sb *strings.Builder, summary *model.Summary) {
	fmt.Fprintf(sb, "Total pages:          %d\n", summary.TotalPages)
	fmt.Fprintf(sb, "Unique domains:       %d\n", summary.UniqueDomains)
	fmt.Fprintf(sb, "Top domains analyzed: %d\n", len(summary.TopDomains))
	fmt.Fprintf(sb, "Ranked titles:        %d\n", summary.RankedTitleCount())
	sb.WriteString("\n")
}

// writeDomains writes the leading domains with their longest titles.
func (w *SimpleWriter) writeDomains(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "TOP %d DOMAINS\n", w.maxDomains)
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if !summary.HasDomains() {
		sb.WriteString("\n  No domains\n\n")
		return
	}

	for i, d := range summary.TopDomains {
		if i >= w.maxDomains {
			break
		}
		fmt.Fprintf(sb, "\n%d. %s (%d visits)\n", i+1, d.Domain, d.VisitCount)
		for j, title := range d.TopTitles {
			if j >= w.maxTitles {
				break
			}
			fmt.Fprintf(sb, "   %d. %s\n", j+1, truncateString(title, w.titleWidth))
		}
	}
	sb.WriteString("\n")
}

// writeSamples writes the sample titles.
func (w *SimpleWriter) writeSamples(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SAMPLE TITLES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(summary.SampleTitles) == 0 {
		sb.WriteString("  No titles\n\n")
		return
	}
	for _, title := range summary.SampleTitles {
		fmt.Fprintf(sb, "  * %s\n", truncateString(title, w.titleWidth))
	}
	sb.WriteString("\n")
}

// writeFooter writes the closing banner.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// truncateString cuts s after maxLen characters and appends "...".
// Strings that fit are returned unchanged.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:max(maxLen, 0)]) + "..."
}
