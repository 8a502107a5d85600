package core

import (
	"context"
	"runtime"
	"sync"
)

// ParallelMap executes a function in parallel for each item and collects results.
// This is a convenience wrapper around ParallelMapWithContext using context.Background().
func ParallelMap[T any, R any](items []T, fn func(T) R) []R {
	return ParallelMapWithContext(context.Background(), items, fn)
}

// ParallelMapWithContext executes a function in parallel with cancellation support.
// Each goroutine writes its own range of the result slice, so no mutex is needed.
func ParallelMapWithContext[T any, R any](ctx context.Context, items []T, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}

	numWorkers := min(runtime.NumCPU(), len(items))
	chunkSize := max(1, len(items)/numWorkers)

	// Pre-allocate result slice
	results := make([]R, len(items))
	var wg sync.WaitGroup

	for i := 0; i < len(items); i += chunkSize {
		start := i
		end := min(i+chunkSize, len(items))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					results[j] = fn(items[j])
				}
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
