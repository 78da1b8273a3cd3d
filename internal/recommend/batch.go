package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/dataset"
	"github.com/psinghania/packadvisor/internal/profile"
)

// BatchResult pairs one batch entry with its inferred profile and ranked
// recommendations.
type BatchResult struct {
	Entry   dataset.Entry  `json:"entry"`
	Profile map[string]any `json:"profile"`

	Recommendations []Recommendation `json:"recommendations"`
}

// Batch scores every entry against the catalog, running up to workers
// entries concurrently. Results keep the input order. The catalog is
// read-only during the run, so entries share it without locking. A scoring
// error on any entry cancels the rest and is returned.
func (e *Engine) Batch(ctx context.Context, entries []dataset.Entry, cat *catalog.Catalog, topN, workers int) ([]BatchResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, entry := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := profile.Infer(entry.Name, entry.Purpose, entry.Budget, entry.ShelfLife, cat)
			recs, err := e.Recommend(p, cat)
			if err != nil {
				return err
			}
			results[i] = BatchResult{
				Entry:           entry,
				Profile:         p.AsMap(),
				Recommendations: Top(recs, topN),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
