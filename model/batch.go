package model

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

/*
PredictBatch predicts labels for all queries using up to workers goroutines.
Results keep the order of queries. The first failed query cancels the rest
and its error is returned. Non-positive workers means GOMAXPROCS.
*/
func PredictBatch(ctx context.Context, m PredictionModel, queries []FeatureVector, workers int) ([]Label, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Label, len(queries))
	if len(queries) == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(queries) {
		workers = len(queries)
	}

	g, ctx := errgroup.WithContext(ctx)
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range queries {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range next {
				l, err := m.Predict(queries[i])
				if err != nil {
					return xerrors.Errorf("query %d: %w", i, err)
				}
				out[i] = l
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
