package core

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool manages a pool of worker goroutines for independent jobs
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	completed  atomic.Int64
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.completed.Add(1)
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit adds a job to the worker queue
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// SubmitWithContext adds a job that is skipped if ctx is already cancelled
// when a worker picks it up.
func (wp *WorkerPool) SubmitWithContext(ctx context.Context, job func()) {
	wp.Submit(func() {
		if ctx.Err() != nil {
			return
		}
		job()
	})
}

// Wait blocks until every submitted job has finished
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts down the workers. Jobs still queued are abandoned.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Completed returns how many jobs the pool has run since it was created
func (wp *WorkerPool) Completed() int64 {
	return wp.completed.Load()
}

// ParallelFor runs fn for every index in [start, end) and waits
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	wp.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext runs fn for every index in [start, end), split into
// one chunk per worker. Chunks stop between indices once ctx is cancelled.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := max(1, (end-start+wp.numWorkers-1)/wp.numWorkers)
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		wp.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				if ctx.Err() != nil {
					return
				}
				fn(j)
			}
		})
	}
	wp.Wait()
}

// MapWithContext runs fn for each index in [0, n) on the pool and returns the
// results in index order. The first error cancels the remaining work and is
// returned; slots that never ran keep their zero value.
func MapWithContext[R any](ctx context.Context, wp *WorkerPool, n int, fn func(context.Context, int) (R, error)) ([]R, error) {
	results := make([]R, n)
	if n == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	for i := 0; i < n; i++ {
		idx := i
		wp.SubmitWithContext(ctx, func() {
			r, err := fn(ctx, idx)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			results[idx] = r
		})
	}
	wp.Wait()

	if firstErr != nil {
		return results, firstErr
	}
	return results, ctx.Err()
}
