package aggregate

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// DomainCount is a domain with its number of distinct cleaned titles.
type DomainCount struct {
	Domain string
	Count  int
}

// Index maps each domain to the set of cleaned titles seen for it.
// Domains keep first-seen order, which decides ranking ties.
// An Index is not safe for concurrent use.
type Index struct {
	minTitleLength int
	domains        []string
	titles         map[string]map[string]struct{}
}

// NewIndex creates an empty Index. Cleaned titles must be longer than
// minTitleLength characters to be inserted.
func NewIndex(minTitleLength int) *Index {
	return &Index{
		minTitleLength: minTitleLength,
		domains:        make([]string, 0),
		titles:         make(map[string]map[string]struct{}),
	}
}

// Add groups one record. It reports whether a title was inserted.
// Records without url or title, without a parsable domain, or whose
// cleaned title is too short are ignored. A domain enters the index only
// together with its first title.
func (ix *Index) Add(rec model.Record) bool {
	if rec.URL == "" || rec.Title == "" {
		return false
	}

	domain := ExtractDomain(rec.URL)
	if domain == "" {
		return false
	}

	cleaned := CleanTitle(rec.Title)
	if utf8.RuneCountInString(cleaned) <= ix.minTitleLength {
		return false
	}

	set, ok := ix.titles[domain]
	if !ok {
		set = make(map[string]struct{})
		ix.titles[domain] = set
		ix.domains = append(ix.domains, domain)
	}
	set[cleaned] = struct{}{}
	return true
}

// Len returns the number of domains in the index.
func (ix *Index) Len() int {
	return len(ix.domains)
}

// Top returns up to n domains ordered by descending title count.
// Domains with equal counts keep first-seen order.
func (ix *Index) Top(n int) []DomainCount {
	ranked := make([]DomainCount, 0, len(ix.domains))
	for _, d := range ix.domains {
		ranked = append(ranked, DomainCount{Domain: d, Count: len(ix.titles[d])})
	}

	slices.SortStableFunc(ranked, func(a, b DomainCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	n = max(n, 0)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Titles returns up to k titles of domain, longest first.
// Titles of equal length are ordered lexicographically.
func (ix *Index) Titles(domain string, k int) []string {
	set := ix.titles[domain]
	titles := make([]string, 0, len(set))
	for t := range set {
		titles = append(titles, t)
	}

	slices.SortFunc(titles, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	k = max(k, 0)
	if len(titles) > k {
		titles = titles[:k]
	}
	return titles
}
