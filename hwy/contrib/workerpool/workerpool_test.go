// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

// ranges records every [start, end) a loop hands out.
type ranges struct {
	mu   sync.Mutex
	seen [][2]int
	hits []int32
}

func newRanges(n int) *ranges {
	return &ranges{hits: make([]int32, n)}
}

func (r *ranges) record(start, end int) {
	r.mu.Lock()
	r.seen = append(r.seen, [2]int{start, end})
	r.mu.Unlock()
	for i := start; i < end; i++ {
		atomic.AddInt32(&r.hits[i], 1)
	}
}

func (r *ranges) requireCoveredOnce(t *testing.T) {
	t.Helper()
	for i, h := range r.hits {
		require.EqualValues(t, 1, h, "index %d visited %d times", i, h)
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 3, 4, 5, 7, 100, 1001} {
		r := newRanges(n)
		pool.ParallelFor(n, r.record)
		r.requireCoveredOnce(t)
		assert.LessOrEqual(t, len(r.seen), 4, "n=%d", n)
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, n := range []int{1, 8, 9, 23, 64, 67, 1000} {
		r := newRanges(n)
		pool.ParallelForAligned(n, 8, r.record)
		r.requireCoveredOnce(t)
		for _, s := range r.seen {
			assert.Zero(t, s[0]%8, "n=%d: range %v starts off alignment", n, s)
			if s[1] != n {
				assert.Zero(t, s[1]%8, "n=%d: range %v ends off alignment", n, s)
			}
		}
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	r := newRanges(103)
	pool.ParallelForBatched(103, 10, r.record)
	r.requireCoveredOnce(t)
	assert.Len(t, r.seen, 11)
	for _, s := range r.seen {
		assert.LessOrEqual(t, s[1]-s[0], 10)
	}
}

func TestZeroAndNegativeN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	fn := func(start, end int) { called = true }
	pool.ParallelFor(0, fn)
	pool.ParallelFor(-3, fn)
	pool.ParallelForAligned(0, 8, fn)
	pool.ParallelForBatched(0, 4, fn)
	assert.False(t, called)
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	r := newRanges(50)
	pool.ParallelFor(50, r.record)
	r.requireCoveredOnce(t)
	require.Equal(t, [][2]int{{0, 50}}, r.seen)

	r = newRanges(50)
	pool.ParallelForBatched(50, 7, r.record)
	r.requireCoveredOnce(t)
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	results := make([]*ranges, 8)
	for i := range results {
		results[i] = newRanges(500)
		wg.Go(func() {
			pool.ParallelForAligned(500, 16, results[i].record)
		})
	}
	wg.Wait()
	for _, r := range results {
		r.requireCoveredOnce(t)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float32, 1<<16)

	b.ReportAllocs()
	for b.Loop() {
		pool.ParallelForAligned(len(data), 8, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = data[i]*0.5 + 1
			}
		})
	}
}
