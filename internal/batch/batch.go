// Package batch renders many seeds of one sketch on a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNoWorkers = errors.New("batch: workers must be positive")

// RenderFunc renders one seed and returns the run name it was saved as.
type RenderFunc func(ctx context.Context, seed int64) (string, error)

type Result struct {
	Seed     int64
	Run      string
	Err      error
	Duration time.Duration
}

// Seeds returns count consecutive seeds starting at start.
func Seeds(start int64, count int) []int64 {
	seeds := make([]int64, max(count, 0))
	for i := range seeds {
		seeds[i] = start + int64(i)
	}
	return seeds
}

type Runner struct {
	workers  int
	progress func(Result)
}

type Option func(*Runner)

// WithProgress calls fn after every finished seed. fn is called from the
// worker goroutines, one call at a time.
func WithProgress(fn func(Result)) Option {
	return func(r *Runner) { r.progress = fn }
}

func NewRunner(workers int, opts ...Option) (*Runner, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoWorkers, workers)
	}
	r := &Runner{workers: workers}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run renders every seed with at most workers renders in flight. The first
// failure cancels the seeds not yet started and is returned. Results are in
// seed order; seeds that never ran have a nil Err and an empty Run.
func (r *Runner) Run(ctx context.Context, seeds []int64, render RenderFunc) ([]Result, error) {
	results := make([]Result, len(seeds))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			run, err := render(gctx, seed)
			res := Result{Seed: seed, Run: run, Err: err, Duration: time.Since(start)}

			mu.Lock()
			results[i] = res
			if r.progress != nil {
				r.progress(res)
			}
			mu.Unlock()

			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
