package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/extract"
	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// writeFiles writes each content to its own file and returns the paths in order.
func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".json")
		if err := os.WriteFile(paths[i], []byte(c), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", paths[i], err)
		}
	}
	return paths
}

// TestBatchProcessorNew tests the BatchProcessor constructor.
func TestBatchProcessorNew(t *testing.T) {
	t.Parallel()

	t.Run("creates processor with defaults", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(extract.Extract)
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
		if bp.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(extract.Extract, WithConcurrency(2))
		if bp.concurrency != 2 {
			t.Errorf("expected concurrency 2, got %d", bp.concurrency)
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(extract.Extract, WithConcurrency(0))
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
	})
}

// TestBatchProcessorProcessFiles tests concurrent file processing.
func TestBatchProcessorProcessFiles(t *testing.T) {
	t.Parallel()

	t.Run("keeps argument order", func(t *testing.T) {
		t.Parallel()

		paths := writeFiles(t,
			`[{"title":"first","url":"https://a.com"}]`,
			`{"x":[{"title":"second"},{"title":"third"}]}`,
			`[]`,
			`[{"header":"fourth"}]`,
		)

		// Later files finish first.
		var remaining atomic.Int32
		remaining.Store(int32(len(paths)))
		parse := func(data []byte) ([]model.Record, error) {
			time.Sleep(time.Duration(remaining.Add(-1)) * 5 * time.Millisecond)
			return extract.Extract(data)
		}

		results, err := NewBatchProcessor(parse, WithConcurrency(4)).ProcessFiles(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var titles []string
		for i, r := range results {
			if r.Path != paths[i] {
				t.Errorf("result %d: expected path %s, got %s", i, paths[i], r.Path)
			}
			for _, rec := range r.Records {
				titles = append(titles, rec.Title)
			}
		}
		want := "first,second,third,fourth"
		if got := strings.Join(titles, ","); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("records digest and size", func(t *testing.T) {
		t.Parallel()

		content := `[{"title":"x"}]`
		paths := writeFiles(t, content)

		results, err := NewBatchProcessor(extract.Extract).ProcessFiles(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results[0].Digest != Digest([]byte(content)) {
			t.Errorf("unexpected digest %s", results[0].Digest)
		}
		if len(results[0].Digest) != 64 {
			t.Errorf("expected 64 hex characters, got %d", len(results[0].Digest))
		}
		if results[0].Size != len(content) {
			t.Errorf("expected size %d, got %d", len(content), results[0].Size)
		}
	})

	t.Run("malformed file aborts with path", func(t *testing.T) {
		t.Parallel()

		paths := writeFiles(t, `[{"title":"ok"}]`, `{broken`)

		results, err := NewBatchProcessor(extract.Extract).ProcessFiles(context.Background(), paths)
		if !errors.Is(err, extract.ErrMalformedDocument) {
			t.Fatalf("expected ErrMalformedDocument, got %v", err)
		}
		if !strings.Contains(err.Error(), paths[1]) {
			t.Errorf("expected error to name %s, got %v", paths[1], err)
		}
		if results != nil {
			t.Error("expected no partial results")
		}
	})

	t.Run("missing file aborts", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.json")
		_, err := NewBatchProcessor(extract.Extract).ProcessFiles(context.Background(), []string{missing})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		paths := writeFiles(t, `[]`, `[]`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		parse := func(data []byte) ([]model.Record, error) {
			calls.Add(1)
			return extract.Extract(data)
		}
		_, err := NewBatchProcessor(parse).ProcessFiles(ctx, paths)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no files parsed, got %d", calls.Load())
		}
	})

	t.Run("limits concurrency", func(t *testing.T) {
		t.Parallel()

		paths := writeFiles(t, `[]`, `[]`, `[]`, `[]`, `[]`, `[]`)
		var active, peak atomic.Int32
		parse := func(data []byte) ([]model.Record, error) {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			active.Add(-1)
			return extract.Extract(data)
		}

		if _, err := NewBatchProcessor(parse, WithConcurrency(2)).ProcessFiles(context.Background(), paths); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if peak.Load() > 2 {
			t.Errorf("expected at most 2 concurrent parses, got %d", peak.Load())
		}
	})
}

// TestDigest tests the SHA3-256 helper.
func TestDigest(t *testing.T) {
	t.Parallel()

	// SHA3-256 of the empty string.
	want := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	if got := Digest(nil); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
