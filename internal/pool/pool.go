// Package pool provides a bounded worker pool for the per-guess partition
// fan-out at the entry of every oracle/search call. Adapted from
// vxm-ppz/go-solution's AStarSolver worker-goroutine shape (NewAStarSolver
// (numWorkers), one goroutine per worker, shared WaitGroup), collapsed here
// onto golang.org/x/sync/errgroup since partition computation has no
// worker-local state that needs to survive across calls the way the
// teacher's long-lived openSet/closedSet did.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs tasks across a fixed number of workers.
type Pool struct {
	workers int
}

// New returns a Pool sized to n workers. n <= 0 defaults to the number of
// CPUs, mirroring NewAStarSolver's fallback to runtime.NumCPU().
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Pool{workers: n}
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach runs fn(i) for i in [0, n), spread across the pool's worker
// count, and waits for all calls to finish. A single-worker pool runs
// sequentially without spawning goroutines at all, so -t 1 and a direct
// sequential loop are observably identical (spec.md §8 property 8).
func ForEach(p *Pool, n int, fn func(i int)) {
	if p.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, p.workers)

	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
