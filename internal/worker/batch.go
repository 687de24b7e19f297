package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fnolagent/internal/model"
)

// Processor defines the interface for processing a single FNOL document
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*model.ClaimResult, error)
	ProviderName() string
}

// DocumentJob represents a single-document processing job
type DocumentJob struct {
	Path      string
	Processor Processor
	Limiter   *Limiter
}

// Execute executes the document job, honoring the provider rate limit
func (j *DocumentJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Processor.ProviderName()); err != nil {
			return &DocumentResult{Path: j.Path, Error: err}
		}
	}

	claim, err := j.Processor.ProcessFile(ctx, j.Path)
	if err != nil {
		return &DocumentResult{Path: j.Path, Error: err}
	}
	return &DocumentResult{Path: j.Path, Claim: claim}
}

// DocumentResult represents the result of a document job
type DocumentResult struct {
	Path  string
	Claim *model.ClaimResult
	Error error
}

// GetError returns the error from the document result
func (r *DocumentResult) GetError() error {
	return r.Error
}

// BatchProcessor processes a directory of FNOL documents concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. The rate limit applies
// per provider across all workers.
func NewBatchProcessor(processor Processor, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}

	var limiter *Limiter
	if requestsPerSecond > 0 {
		limiter = NewLimiter(requestsPerSecond, burst)
	}

	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessFiles processes the given documents concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*DocumentResult {
	if len(paths) == 0 {
		return []*DocumentResult{}
	}

	// Queues sized to the batch: every job is submitted up front and
	// results are drained afterwards, with no risk of filling a buffer.
	// Cancelling ctx stops in-flight work.
	pool := NewBufferedPool(ctx, b.concurrency, len(paths))
	pool.Start()

	for _, path := range paths {
		pool.Submit(&DocumentJob{
			Path:      path,
			Processor: b.processor,
			Limiter:   b.limiter,
		})
	}

	results := pool.Wait()

	docResults := make([]*DocumentResult, len(results))
	for i, result := range results {
		docResults[i] = result.(*DocumentResult)
	}

	return docResults
}

// ProcessDirectory processes every supported document in a directory and
// returns the aggregate summary. A failed document never aborts the batch;
// it is recorded as a failed outcome.
func (b *BatchProcessor) ProcessDirectory(ctx context.Context, dir string) (*model.BatchSummary, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return b.Summarize(b.ProcessFiles(ctx, paths)), nil
}

// Summarize aggregates per-document results into a batch summary. Outcomes
// are sorted by filename and the route tally always carries every route,
// including zero counts.
func (b *BatchProcessor) Summarize(results []*DocumentResult) *model.BatchSummary {
	stats := model.NewBatchStats()
	outcomes := make([]model.FileOutcome, 0, len(results))

	for _, result := range results {
		stats.Total++
		outcome := model.FileOutcome{Filename: filepath.Base(result.Path)}

		if result.Error != nil {
			stats.Failed++
			outcome.Status = model.StatusFailed
			outcome.Error = result.Error.Error()
		} else {
			stats.Successful++
			stats.Routes[result.Claim.Route]++
			route := result.Claim.Route
			outcome.Route = &route
			outcome.Status = model.StatusSuccess
		}

		outcomes = append(outcomes, outcome)
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Filename < outcomes[j].Filename
	})

	return &model.BatchSummary{
		ProcessedAt: time.Now().UTC(),
		Statistics:  stats,
		Results:     outcomes,
	}
}

// ListDocuments returns the supported FNOL documents in a directory,
// sorted by filename. Only .txt and .pdf files are picked up.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".pdf":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
