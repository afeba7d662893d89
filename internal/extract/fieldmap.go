package extract

import (
	"slices"
)

// FieldMap lists, per canonical field, the source keys tried in order.
type FieldMap struct {
	// URL keys, highest priority first.
	URL []string `yaml:"url"`

	// Title keys, highest priority first.
	Title []string `yaml:"title"`

	// Timestamp keys, highest priority first.
	Timestamp []string `yaml:"timestamp"`
}

// DefaultFieldMap returns the key chains used for Google Takeout and
// similar exports.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		URL:       []string{"url", "link"},
		Title:     []string{"title", "header", "activity"},
		Timestamp: []string{"time", "timestampMillis", "time_usec"},
	}
}

// Clone returns a deep copy of the field map.
func (m FieldMap) Clone() FieldMap {
	return FieldMap{
		URL:       slices.Clone(m.URL),
		Title:     slices.Clone(m.Title),
		Timestamp: slices.Clone(m.Timestamp),
	}
}

// Merge returns m with every empty chain replaced by the chain from fallback.
func (m FieldMap) Merge(fallback FieldMap) FieldMap {
	out := m.Clone()
	if len(out.URL) == 0 {
		out.URL = slices.Clone(fallback.URL)
	}
	if len(out.Title) == 0 {
		out.Title = slices.Clone(fallback.Title)
	}
	if len(out.Timestamp) == 0 {
		out.Timestamp = slices.Clone(fallback.Timestamp)
	}
	return out
}

// Empty reports which chain, if any, has no keys. It returns "" when
// every chain has at least one key.
func (m FieldMap) Empty() string {
	switch {
	case len(m.URL) == 0:
		return "url"
	case len(m.Title) == 0:
		return "title"
	case len(m.Timestamp) == 0:
		return "timestamp"
	default:
		return ""
	}
}
