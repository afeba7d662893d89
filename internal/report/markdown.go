package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// DefaultChartDomains is the number of domains shown in the pie chart.
const DefaultChartDomains = 10

// MarkdownWriter outputs summaries in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter

	// chartDomains limits the pie chart slices. 0 disables the chart.
	chartDomains int
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithChartDomains sets how many domains the pie chart shows.
func WithChartDomains(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.chartDomains = max(n, 0)
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter:   newBaseWriter(output),
		chartDomains: DefaultChartDomains,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	return w.write(nil, summary)
}

// WriteRun outputs the summary preceded by a table of the run's inputs.
func (w *MarkdownWriter) WriteRun(run *model.Run) (int, error) {
	summary, err := summaryOf(run)
	if err != nil {
		return 0, err
	}
	return w.write(run, summary)
}

func (w *MarkdownWriter) write(run *model.Run, summary *model.Summary) (int, error) {
	if summary == nil {
		summary = model.NewSummary()
	}

	md := markdown.NewMarkdown(w.output)

	md.H1("Browsing History Summary")
	md.PlainText("")

	if run != nil {
		w.writeInputs(md, run)
	}
	w.writeOverview(md, summary)
	w.writeRanking(md, summary)
	w.writeDomains(md, summary)
	w.writeSamples(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeInputs writes the provenance table.
func (w *MarkdownWriter) writeInputs(md *markdown.Markdown, run *model.Run) {
	md.H2("Inputs")
	md.PlainText("")

	rows := make([][]string, 0, len(run.Inputs))
	for _, in := range run.Inputs {
		digest := run.InputDigests[in]
		if digest == "" {
			digest = "-"
		} else {
			digest = "`" + digest + "`"
		}
		rows = append(rows, []string{escapeCell(in), digest})
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "SHA3-256"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeOverview writes the totals table.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Overview")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total pages", strconv.Itoa(summary.TotalPages)},
			{"Unique domains", strconv.Itoa(summary.UniqueDomains)},
			{"Top domains analyzed", strconv.Itoa(len(summary.TopDomains))},
			{"Ranked titles", strconv.Itoa(summary.RankedTitleCount())},
		},
	})
	md.PlainText("")

	if !summary.HasDomains() {
		md.Note("No domain had a title long enough to be grouped.")
		md.PlainText("")
		return
	}

	if w.chartDomains > 0 {
		w.writePieChart(md, summary)
	}
}

// writePieChart writes a mermaid pie chart of the top domains.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Distinct Titles per Domain"),
		piechart.WithShowData(true),
	)

	for i, d := range summary.TopDomains {
		if i >= w.chartDomains {
			break
		}
		chart.LabelAndIntValue(strings.ReplaceAll(d.Domain, `"`, ""), uint64(d.VisitCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRanking writes the ranked domain table.
func (w *MarkdownWriter) writeRanking(md *markdown.Markdown, summary *model.Summary) {
	if !summary.HasDomains() {
		return
	}

	md.H2("Top Domains")
	md.PlainText("")

	rows := make([][]string, len(summary.TopDomains))
	for i, d := range summary.TopDomains {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + d.Domain + "`",
			strconv.Itoa(d.VisitCount),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Domain", "Distinct titles"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDomains writes the representative titles of every ranked domain.
func (w *MarkdownWriter) writeDomains(md *markdown.Markdown, summary *model.Summary) {
	if !summary.HasDomains() {
		return
	}

	md.H2("Representative Titles")
	md.PlainText("")

	for i, d := range summary.TopDomains {
		md.H3(fmt.Sprintf("%d. %s (%d)", i+1, d.Domain, d.VisitCount))
		md.PlainText("")
		md.BulletList(d.TopTitles...)
		md.PlainText("")
	}
}

// writeSamples writes the sample titles section.
func (w *MarkdownWriter) writeSamples(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Sample Titles")
	md.PlainText("")

	if len(summary.SampleTitles) == 0 {
		md.PlainText("No titles.")
		md.PlainText("")
		return
	}

	md.BulletList(summary.SampleTitles...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by histsum. Visit counts are distinct page titles per domain.*")
}

// escapeCell makes s safe inside a table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
