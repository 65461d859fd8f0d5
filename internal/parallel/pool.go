// Package parallel runs independent rasterization jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	mu      sync.RWMutex // held for reading while submitting, for writing by Close
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*4),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		job()
	}
}

// Run executes every job and waits for all of them. On a closed pool the
// jobs run on the calling goroutine.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, job := range jobs {
			job()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(jobs))
	for _, job := range jobs {
		p.queue <- func() {
			defer done.Done()
			job()
		}
	}
	p.mu.RUnlock()
	done.Wait()
}

// Close waits for queued jobs to finish and stops the workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts jobs.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Map calls fn for every index in [0, n) on the pool and returns the
// results in index order. A nil pool runs fn sequentially.
func Map[T any](p *Pool, n int, fn func(i int) T) []T {
	out := make([]T, n)
	if p == nil {
		for i := range out {
			out[i] = fn(i)
		}
		return out
	}

	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() { out[i] = fn(i) }
	}
	p.Run(jobs)
	return out
}
