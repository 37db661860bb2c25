package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolSubmitWait(t *testing.T) {
	wp := NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	var sum atomic.Int64
	for i := 1; i <= 100; i++ {
		n := int64(i)
		wp.Submit(func() { sum.Add(n) })
	}
	wp.Wait()

	if sum.Load() != 5050 {
		t.Errorf("Expected sum 5050, got %d", sum.Load())
	}
	if wp.Completed() != 100 {
		t.Errorf("Expected 100 completed jobs, got %d", wp.Completed())
	}
}

func TestWorkerPoolDefaults(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", wp.GetNumWorkers())
	}
	wp.Stop()
	wp.Stop() // second Stop must not panic
}

func TestParallelForCoversRange(t *testing.T) {
	wp := NewWorkerPool(3)
	wp.Start()
	defer wp.Stop()

	hits := make([]atomic.Int32, 10)
	wp.ParallelFor(0, 10, func(i int) { hits[i].Add(1) })
	for i := range hits {
		if hits[i].Load() != 1 {
			t.Errorf("index %d visited %d times", i, hits[i].Load())
		}
	}

	wp.ParallelFor(5, 5, func(int) { t.Error("empty range should not run") })
}

func TestParallelForWithContextCancelled(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	wp.ParallelForWithContext(ctx, 0, 50, func(int) { ran.Add(1) })
	if ran.Load() != 0 {
		t.Errorf("Cancelled context should skip all work, ran %d", ran.Load())
	}
}

func TestMapWithContext(t *testing.T) {
	wp := NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	results, err := MapWithContext(context.Background(), wp, 8, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	if err != nil {
		t.Fatalf("MapWithContext: %v", err)
	}
	for i, r := range results {
		if r != i*i {
			t.Errorf("result %d: expected %d, got %d", i, i*i, r)
		}
	}

	empty, err := MapWithContext(context.Background(), wp, 0, func(context.Context, int) (int, error) { return 1, nil })
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected empty result, got %v, %v", empty, err)
	}
}

func TestMapWithContextError(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	boom := errors.New("boom")
	_, err := MapWithContext(context.Background(), wp, 6, func(_ context.Context, i int) (string, error) {
		if i == 3 {
			return "", boom
		}
		return "ok", nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}
