// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs data-parallel loops on a fixed set of persistent
// goroutines. A Pool is created once and shared by every parallel buffer
// transform or sweep, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(buf), 8, func(start, end int) {
//	    algo.ProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf[start:end],
//	        math.Exp[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Its methods may be called from several
// goroutines at once; calls made after Close run sequentially on the caller.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu orders sends on workC against Close.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has finished. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// run hands every task to the workers and waits for all of them. It reports
// false, running nothing, when the pool is closed.
func (p *Pool) run(tasks []func()) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, fn := range tasks {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
	return true
}

// ParallelFor calls fn on contiguous ranges [start, end) covering [0, n),
// one range per worker, and blocks until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except n
// itself a multiple of align. Vector loops use it so that only the last
// range has a partial tail.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align
	tasks := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		tasks = append(tasks, func() { fn(start, end) })
	}
	if !p.run(tasks) {
		fn(0, n)
	}
}

// ParallelForBatched hands out batches of batchSize indices through an
// atomic counter, so workers that finish early take more batches. Use it
// when the cost per index varies.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	steal := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	tasks := make([]func(), workers)
	for i := range tasks {
		tasks[i] = steal
	}
	if !p.run(tasks) {
		fn(0, n)
	}
}
