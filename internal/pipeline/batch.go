package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/model"
)

// DefaultConcurrency is the number of files read at once when no limit is set.
const DefaultConcurrency = 4

// ParseFunc turns the bytes of one file into canonical records.
type ParseFunc func(data []byte) ([]model.Record, error)

// FileResult is the outcome of processing one input file.
type FileResult struct {
	// Path is the file that was read.
	Path string

	// Records are the records parsed from the file, in file order.
	Records []model.Record

	// Digest is the hex SHA3-256 digest of the file's bytes.
	Digest string

	// Size is the file size in bytes.
	Size int
}

// BatchProcessor reads and parses several files concurrently.
// Results keep the order of the paths given, whatever order the
// goroutines finish in.
type BatchProcessor struct {
	// parse converts one file's bytes into records.
	parse ParseFunc

	// concurrency is the maximum number of files processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of files processed at once.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor using parse for every file.
func NewBatchProcessor(parse ParseFunc, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		parse:       parse,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessFiles reads and parses every path.
// The first failure cancels the remaining work and is returned wrapped
// with the offending path; no partial results are returned in that case.
func (bp *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	bp.logger.Debug("starting batch processing",
		"files", len(paths),
		"concurrency", bp.concurrency,
	)

	// Each goroutine writes only its own index.
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := bp.processFile(path)
			if err != nil {
				return err
			}
			results[i] = result

			bp.logger.Debug("file processed",
				"path", path,
				"index", i+1,
				"total", len(paths),
				"records", len(result.Records),
				"bytes", result.Size,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// processFile reads, digests and parses a single file.
func (bp *BatchProcessor) processFile(path string) (FileResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	records, err := bp.parse(data)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return FileResult{
		Path:    path,
		Records: records,
		Digest:  Digest(data),
		Size:    len(data),
	}, nil
}

// Digest returns the hex SHA3-256 digest of data.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
