// Package scheduler runs per-item work over a bounded worker pool while
// preserving input order. Both the location tracker and the reward matcher
// fan their batches out through it.
package scheduler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config sizes the worker pool: max(NumCPU * Multiplier, MinWorkers).
// Tracking batches are I/O-bound and want a large floor; reward batches are
// CPU-bound and stay close to the core count.
type Config struct {
	Multiplier int
	MinWorkers int
}

// PoolSize resolves the bounded pool size for this config, never below 1.
func (c Config) PoolSize() int {
	size := runtime.NumCPU() * c.Multiplier
	if size < c.MinWorkers {
		size = c.MinWorkers
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Run executes work for every item and returns the results in input order.
//
// Zero items is a no-op. A single item runs synchronously on the calling
// goroutine so single-user latency never pays pool overhead. Two or more
// items fan out across at most cfg.PoolSize() workers; Wait joins every
// worker before returning, so on failure the pool is fully drained and the
// first error is surfaced. Partial results are discarded on error - callers
// that need per-item outcomes should loop over the single-item path.
func Run[T, R any](ctx context.Context, items []T, cfg Config, work func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	if len(items) == 1 {
		r, err := work(ctx, items[0])
		if err != nil {
			return nil, err
		}
		results[0] = r
		return results, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(cfg.PoolSize())
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := work(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
