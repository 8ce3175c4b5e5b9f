// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting element-wise numeric work across CPUs. A Pool is created once
// and reused across many slice evaluations, so repeated batch calls do not
// pay goroutine spawn or channel allocation costs.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        ys[i] = libm.Sin(xs[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	workers int
	tasks   chan func()
	stop    sync.Once
	closed  atomic.Bool
}

// New creates a pool with the given number of workers, spawned
// immediately. If workers <= 0, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers),
	}
	for range workers {
		go p.drain()
	}
	return p
}

// drain is the worker loop; it exits when the task channel closes.
func (p *Pool) drain() {
	for task := range p.tasks {
		task()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after pending work completes. Close is safe
// to call more than once; a closed pool degrades ParallelFor to
// sequential execution rather than failing.
func (p *Pool) Close() {
	p.stop.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor executes fn over contiguous index ranges covering [0, n),
// blocking until all ranges complete. The per-element work in batch
// evaluation is uniform, so contiguous chunks balance without stealing.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	parts := min(p.workers, n)
	if parts == 1 || p.closed.Load() {
		fn(0, n)
		return
	}
	size := (n + parts - 1) / parts

	var pending sync.WaitGroup
	for start := 0; start < n; start += size {
		start, end := start, min(start+size, n)
		pending.Add(1)
		p.tasks <- func() {
			defer pending.Done()
			fn(start, end)
		}
	}
	pending.Wait()
}
