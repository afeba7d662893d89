package extract

import (
	"errors"
	"testing"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []model.Record
	}{
		{
			name:  "top-level array with link fallback and missing title",
			input: `[{"title":"A","url":"u1"},{"header":"B","link":"u2"},{"url":"u3"}]`,
			want: []model.Record{
				{URL: "u1", Title: "A"},
				{URL: "u2", Title: "B"},
			},
		},
		{
			name:  "object values that are arrays are concatenated in order",
			input: `{"Browser History":[{"title":"X","url":"a"}],"meta":5,"Other":[{"activity":"Y"}]}`,
			want: []model.Record{
				{URL: "a", Title: "X"},
				{URL: "", Title: "Y"},
			},
		},
		{
			name:  "top-level number yields nothing",
			input: `42`,
			want:  []model.Record{},
		},
		{
			name:  "top-level string yields nothing",
			input: `"history"`,
			want:  []model.Record{},
		},
		{
			name:  "top-level null yields nothing",
			input: `null`,
			want:  []model.Record{},
		},
		{
			name:  "non-object candidates are skipped",
			input: `[1,"two",null,[{"title":"nested"}],{"title":"ok"}]`,
			want: []model.Record{
				{Title: "ok"},
			},
		},
		{
			name:  "empty title falls through to header",
			input: `[{"title":"","header":"Fallback","url":"u"}]`,
			want: []model.Record{
				{URL: "u", Title: "Fallback"},
			},
		},
		{
			name:  "non-string title drops the record",
			input: `[{"title":123,"url":"u"},{"title":true},{"title":["x"]}]`,
			want:  []model.Record{},
		},
		{
			name:  "non-string url becomes empty",
			input: `[{"title":"T","url":{"href":"x"}}]`,
			want: []model.Record{
				{URL: "", Title: "T"},
			},
		},
		{
			name:  "empty url falls through to link",
			input: `[{"title":"T","url":"","link":"l"}]`,
			want: []model.Record{
				{URL: "l", Title: "T"},
			},
		},
		{
			name:  "duplicates are kept",
			input: `[{"title":"Same","url":"u"},{"title":"Same","url":"u"}]`,
			want: []model.Record{
				{URL: "u", Title: "Same"},
				{URL: "u", Title: "Same"},
			},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  []model.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertRecords(t, got, tt.want)
		})
	}
}

func TestExtractTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "time wins", input: `[{"title":"T","time":"2024-01-01T00:00:00Z","timestampMillis":5}]`, want: `"2024-01-01T00:00:00Z"`},
		{name: "millis fallback", input: `[{"title":"T","timestampMillis":1700000000000}]`, want: `1700000000000`},
		{name: "usec fallback", input: `[{"title":"T","time_usec":1700000000000000}]`, want: `1700000000000000`},
		{name: "zero falls through", input: `[{"title":"T","time":0,"time_usec":7}]`, want: `7`},
		{name: "absent", input: `[{"title":"T"}]`, want: ``},
		{name: "null", input: `[{"title":"T","time":null}]`, want: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 record, got %d", len(got))
			}
			if string(got[0].Timestamp) != tt.want {
				t.Errorf("expected timestamp %q, got %q", tt.want, string(got[0].Timestamp))
			}
		})
	}
}

func TestExtractMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{``, `{`, `[{"title":"A"},]`, `not json`}
	for _, in := range inputs {
		got, err := Extract([]byte(in))
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("input %q: expected ErrMalformedDocument, got %v", in, err)
		}
		if got != nil {
			t.Errorf("input %q: expected no records, got %v", in, got)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	input := []byte(`{"a":[{"title":"One","url":"https://a.com","time":1}],"b":[{"header":"Two","link":"https://b.com"}]}`)

	first, err := Extract(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRecords(t, second, first)
}

func TestExtractEveryRecordHasTitle(t *testing.T) {
	t.Parallel()

	input := []byte(`[{"title":""},{"header":null},{"activity":"Watched x"},{},{"title":" "}]`)
	got, err := Extract(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, r := range got {
		if r.Title == "" {
			t.Errorf("record with empty title: %+v", r)
		}
	}
}

func TestExtractorOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom field map", func(t *testing.T) {
		t.Parallel()

		e := NewExtractor(WithFieldMap(FieldMap{
			URL:   []string{"href"},
			Title: []string{"name"},
		}))
		got, err := e.Extract([]byte(`[{"name":"Custom","href":"h","title":"ignored","time":9}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertRecords(t, got, []model.Record{{URL: "h", Title: "Custom"}})
		if string(got[0].Timestamp) != "9" {
			t.Errorf("expected default timestamp chain to apply, got %q", string(got[0].Timestamp))
		}
	})

	t.Run("entity decoding", func(t *testing.T) {
		t.Parallel()

		input := []byte(`[{"title":"Q&amp;A &lt;tips&gt;"}]`)

		plain, err := NewExtractor().Extract(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plain[0].Title != "Q&amp;A &lt;tips&gt;" {
			t.Errorf("expected title untouched, got %q", plain[0].Title)
		}

		decoded, err := NewExtractor(WithEntityDecoding(true)).Extract(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decoded[0].Title != "Q&A <tips>" {
			t.Errorf("expected decoded title, got %q", decoded[0].Title)
		}
	})

	t.Run("nil logger keeps default", func(t *testing.T) {
		t.Parallel()

		e := NewExtractor(WithLogger(nil))
		if e.logger == nil {
			t.Error("expected logger to remain set")
		}
	})
}

func TestExtractUnicode(t *testing.T) {
	t.Parallel()

	got, err := Extract([]byte(`[{"title":"Café été 日本語","url":"https://例え.jp/"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRecords(t, got, []model.Record{{URL: "https://例え.jp/", Title: "Café été 日本語"}})
}

func assertRecords(t *testing.T, got, want []model.Record) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].URL != want[i].URL {
			t.Errorf("record %d: expected url %q, got %q", i, want[i].URL, got[i].URL)
		}
		if got[i].Title != want[i].Title {
			t.Errorf("record %d: expected title %q, got %q", i, want[i].Title, got[i].Title)
		}
		if string(got[i].Timestamp) != string(want[i].Timestamp) {
			t.Errorf("record %d: expected timestamp %q, got %q", i, want[i].Timestamp, got[i].Timestamp)
		}
	}
}
