package astar

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SearchAll runs independent searches in parallel, at most limit at a time
// (limit ≤ 0 means runtime.NumCPU()). Results are returned in query order.
//
// Each query owns its SearchState; grids may be shared between queries as long
// as nobody mutates them while SearchAll runs. The first failing query cancels
// the rest and its error, tagged with the query index, is returned.
func SearchAll(ctx context.Context, queries []Query, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	results := make([]Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, q := range queries {
		g.Go(func() error {
			opts := make([]Option, 0, len(q.Options)+1)
			opts = append(opts, q.Options...)
			opts = append(opts, WithContext(gctx))

			res, err := Search(q.Grid, q.Start, q.Goal, opts...)
			if err != nil {
				return fmt.Errorf("astar: query %d %v→%v: %w", i, q.Start, q.Goal, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
