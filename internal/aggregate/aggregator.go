package aggregate

import (
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// Aggregator builds a model.Summary from canonical records.
type Aggregator struct {
	topN            int
	titlesPerDomain int
	sampleSize      int
	minTitleLength  int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTopN sets how many domains the summary keeps.
func WithTopN(n int) Option {
	return func(a *Aggregator) {
		a.topN = n
	}
}

// WithTitlesPerDomain sets how many representative titles each domain keeps.
func WithTitlesPerDomain(n int) Option {
	return func(a *Aggregator) {
		a.titlesPerDomain = n
	}
}

// WithSampleSize sets how many sample titles the summary keeps.
func WithSampleSize(n int) Option {
	return func(a *Aggregator) {
		a.sampleSize = n
	}
}

// WithMinTitleLength sets the cleaned-title length a title must exceed.
func WithMinTitleLength(n int) Option {
	return func(a *Aggregator) {
		a.minTitleLength = n
	}
}

// NewAggregator creates an Aggregator with the default limits.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		topN:            model.DefaultTopN,
		titlesPerDomain: model.DefaultTitlesPerDomain,
		sampleSize:      model.DefaultSampleSize,
		minTitleLength:  model.DefaultMinTitleLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summarize groups records by domain and returns the ranked summary.
func (a *Aggregator) Summarize(records []model.Record) *model.Summary {
	ix := NewIndex(a.minTitleLength)
	for _, rec := range records {
		ix.Add(rec)
	}

	summary := model.NewSummary()
	summary.TotalPages = len(records)
	summary.UniqueDomains = ix.Len()

	for _, dc := range ix.Top(a.topN) {
		summary.TopDomains = append(summary.TopDomains, model.DomainSummary{
			Domain:     dc.Domain,
			VisitCount: dc.Count,
			TopTitles:  ix.Titles(dc.Domain, a.titlesPerDomain),
		})
	}

	summary.SampleTitles = sampleTitles(records, a.sampleSize)
	return summary
}

// Summarize aggregates records with the default limits.
func Summarize(records []model.Record) *model.Summary {
	return NewAggregator().Summarize(records)
}

// sampleTitles returns the first n non-empty titles in record order.
func sampleTitles(records []model.Record, n int) []string {
	samples := make([]string, 0, min(max(n, 0), len(records)))
	for _, rec := range records {
		if len(samples) >= n {
			break
		}
		if rec.Title != "" {
			samples = append(samples, rec.Title)
		}
	}
	return samples
}
