package dataview

import (
	"context"

	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"golang.org/x/sync/errgroup"
)

// Operation applies a single action (delete, status change) to one record
// id against the store API.
type Operation func(ctx context.Context, id string) error

// BulkResult is the outcome for one id of a bulk operation. Reporting is
// per id rather than all-or-nothing so the caller can summarize partial
// failures honestly ("8 of 10 succeeded") instead of reporting an aggregate
// failure after some mutations already landed.
type BulkResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DefaultBulkConcurrency bounds the concurrent API calls of a bulk
// operation when the caller does not configure a limit.
const DefaultBulkConcurrency = 4

// BulkRunner fans an operation out over a set of selected ids with bounded
// concurrency.
type BulkRunner struct {
	concurrency int
	logger      log.Logger
}

func NewBulkRunner(concurrency int, logger log.Logger) *BulkRunner {
	if concurrency <= 0 {
		concurrency = DefaultBulkConcurrency
	}
	return &BulkRunner{concurrency: concurrency, logger: logger}
}

// Run issues one call per id concurrently and collects a result per id in
// input order. A failed call never aborts the remaining ones; each id
// reports its own outcome.
func (r *BulkRunner) Run(ctx context.Context, ids []string, op Operation) []BulkResult {
	results := make([]BulkResult, len(ids))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			if err := op(ctx, id); err != nil {
				r.logger.Warn("bulk operation failed for record",
					"id", id,
					"error", err)
				results[i] = BulkResult{ID: id, Success: false, Error: err.Error()}
				return nil
			}
			results[i] = BulkResult{ID: id, Success: true}
			return nil
		})
	}

	// Goroutines only record their own slot and never return an error.
	_ = group.Wait()
	return results
}

// Summarize counts successes and failures over a result list.
func Summarize(results []BulkResult) (succeeded int, failed int) {
	for _, result := range results {
		if result.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
