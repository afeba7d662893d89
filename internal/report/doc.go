// Package report renders summaries and canonical records.
//
// This package contains writers for different output formats:
//   - JSONWriter: the summary and records files, pretty-printed with stable key order
//   - SimpleWriter: human-readable text output for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a mermaid pie chart
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
