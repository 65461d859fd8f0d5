package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestPool_Run(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	pool.Run(jobs)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close() // idempotent

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	ran := 0
	pool.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("closed pool ran %d jobs, want 2", ran)
	}
}

func TestPool_ConcurrentRun(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]func(), 50)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			pool.Run(jobs)
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != 400 {
		t.Errorf("counter = %d, want 400", got)
	}
}

func TestMap(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	for _, p := range []*Pool{pool, nil} {
		got := Map(p, 50, func(i int) int { return i * i })
		if len(got) != 50 {
			t.Fatalf("len = %d, want 50", len(got))
		}
		for i, v := range got {
			if v != i*i {
				t.Errorf("Map[%d] = %d, want %d", i, v, i*i)
			}
		}
	}

	if got := Map(pool, 0, func(int) int { return 1 }); len(got) != 0 {
		t.Errorf("Map with n=0 returned %v", got)
	}
}
