package extract

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// Extractor maps export documents onto canonical records.
// An Extractor holds no per-document state and is safe for concurrent use.
type Extractor struct {
	fields         FieldMap
	decodeEntities bool
	logger         *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFieldMap sets the key chains. Empty chains fall back to the defaults.
func WithFieldMap(m FieldMap) Option {
	return func(e *Extractor) {
		e.fields = m.Merge(DefaultFieldMap())
	}
}

// WithEntityDecoding enables HTML entity decoding of titles
// ("Q&amp;A" becomes "Q&A").
func WithEntityDecoding(enabled bool) Option {
	return func(e *Extractor) {
		e.decodeEntities = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an Extractor using the default field map.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		fields: DefaultFieldMap(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses data with a default Extractor.
func Extract(data []byte) ([]model.Record, error) {
	return NewExtractor().Extract(data)
}

// Extract returns the canonical records found in data, in document order.
// It fails only when data is not valid JSON.
func (e *Extractor) Extract(data []byte) ([]model.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedDocument
	}

	candidates := candidatesOf(gjson.ParseBytes(data))
	records := make([]model.Record, 0, len(candidates))
	for _, c := range candidates {
		if rec, ok := e.toRecord(c); ok {
			records = append(records, rec)
		}
	}

	e.logger.Debug("extracted records",
		"candidates", len(candidates),
		"records", len(records),
		"skipped", len(candidates)-len(records),
	)
	return records, nil
}

// candidatesOf returns the record-like values of a document root.
func candidatesOf(root gjson.Result) []gjson.Result {
	candidates := make([]gjson.Result, 0)
	switch {
	case root.IsArray():
		root.ForEach(func(_, v gjson.Result) bool {
			candidates = append(candidates, v)
			return true
		})
	case root.IsObject():
		root.ForEach(func(_, v gjson.Result) bool {
			if v.IsArray() {
				v.ForEach(func(_, item gjson.Result) bool {
					candidates = append(candidates, item)
					return true
				})
			}
			return true
		})
	}
	return candidates
}

// toRecord maps one candidate. ok is false when the candidate is not an
// object or carries no usable title.
func (e *Extractor) toRecord(candidate gjson.Result) (model.Record, bool) {
	if !candidate.IsObject() {
		return model.Record{}, false
	}

	fields := objectFields(candidate)

	title, found := resolve(fields, e.fields.Title)
	if !found || title.Type != gjson.String {
		return model.Record{}, false
	}
	titleText := title.Str
	if e.decodeEntities {
		titleText = html.UnescapeString(titleText)
	}
	if titleText == "" {
		return model.Record{}, false
	}

	rec := model.Record{Title: titleText}
	if u, ok := resolve(fields, e.fields.URL); ok && u.Type == gjson.String {
		rec.URL = u.Str
	}
	if ts, ok := resolve(fields, e.fields.Timestamp); ok {
		rec.Timestamp = []byte(strings.TrimSpace(ts.Raw))
	}
	return rec, true
}

// objectFields indexes an object's members by key. A repeated key keeps
// its last value, as encoding/json does.
func objectFields(obj gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	obj.ForEach(func(k, v gjson.Result) bool {
		fields[k.Str] = v
		return true
	})
	return fields
}

// resolve returns the first value in keys order that is present and truthy.
func resolve(fields map[string]gjson.Result, keys []string) (gjson.Result, bool) {
	for _, key := range keys {
		v, ok := fields[key]
		if ok && truthy(v) {
			return v, true
		}
	}
	return gjson.Result{}, false
}

// truthy reports whether v counts as a present value.
// null, false, zero, "", [] and {} do not.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.JSON:
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return !empty
	default:
		return false
	}
}

// String describes the extractor configuration for debug logs.
func (e *Extractor) String() string {
	return fmt.Sprintf("url=%v title=%v timestamp=%v decode_entities=%t",
		e.fields.URL, e.fields.Title, e.fields.Timestamp, e.decodeEntities)
}
