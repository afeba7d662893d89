package model

import (
	"bytes"
	"encoding/json"
)

// Record is the canonical browsing-history record.
// Every downstream stage works on this shape only, regardless of how the
// export that produced it was laid out.
type Record struct {
	// URL is the visited address. Empty when the source entry had no
	// usable url/link field.
	URL string `json:"url"`

	// Title is the page title. Never empty for a record produced by the
	// extractor.
	Title string `json:"title"`

	// Timestamp is the source timestamp kept verbatim as raw JSON
	// (milliseconds, microseconds, an RFC 3339 string, ...).
	// A nil Timestamp is written as JSON null.
	Timestamp json.RawMessage `json:"timestamp"`
}

// NewRecord creates a Record with no timestamp.
func NewRecord(url, title string) Record {
	return Record{URL: url, Title: title}
}

// HasTimestamp reports whether the record carries a non-null timestamp.
func (r Record) HasTimestamp() bool {
	return len(r.Timestamp) > 0 && string(r.Timestamp) != "null"
}

// MarshalJSON writes the record with a null timestamp when none is set.
// An empty, non-nil RawMessage is invalid JSON, so it is normalised here.
// "&", "<" and ">" in urls and titles are written as-is.
func (r Record) MarshalJSON() ([]byte, error) {
	type alias Record
	out := alias(r)
	if !r.HasTimestamp() {
		out.Timestamp = json.RawMessage("null")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
