package model

// DefaultTopN is the number of domains kept in a summary.
const DefaultTopN = 25

// DefaultTitlesPerDomain is the number of representative titles kept per domain.
const DefaultTitlesPerDomain = 5

// DefaultSampleSize is the number of sample titles kept in a summary.
const DefaultSampleSize = 10

// DefaultMinTitleLength is the cleaned-title length a title must exceed
// to be grouped under its domain.
const DefaultMinTitleLength = 5

// Summary is the aggregate view of a browsing history.
// Field order is the serialized key order.
type Summary struct {
	// TotalPages is the number of canonical records, before any grouping filter.
	TotalPages int `json:"total_pages"`

	// UniqueDomains is the number of domains that received at least one title.
	// It is not limited by the top-N cut.
	UniqueDomains int `json:"unique_domains"`

	// TopDomains holds the ranked domains, most distinct titles first.
	TopDomains []DomainSummary `json:"top_domains_with_titles"`

	// SampleTitles holds raw titles of the first records, in input order.
	SampleTitles []string `json:"sample_titles"`
}

// DomainSummary describes one ranked domain.
type DomainSummary struct {
	// Domain is the URL host with a leading "www." removed.
	Domain string `json:"domain"`

	// VisitCount is the number of distinct cleaned titles seen for the domain.
	// It is a popularity proxy; exports carry no real visit frequency.
	VisitCount int `json:"visit_count"`

	// TopTitles are the longest cleaned titles, longest first.
	TopTitles []string `json:"top_titles"`
}

// NewSummary creates an empty Summary whose slices serialize as [] rather than null.
func NewSummary() *Summary {
	return &Summary{
		TopDomains:   make([]DomainSummary, 0),
		SampleTitles: make([]string, 0),
	}
}

// HasDomains reports whether any domain made it into the ranking.
func (s *Summary) HasDomains() bool {
	return len(s.TopDomains) > 0
}

// RankedTitleCount returns the total number of representative titles
// across all ranked domains.
func (s *Summary) RankedTitleCount() int {
	total := 0
	for _, d := range s.TopDomains {
		total += len(d.TopTitles)
	}
	return total
}
