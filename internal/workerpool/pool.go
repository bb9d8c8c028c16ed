package workerpool

import (
	"runtime"
	"sync"
)

// Result pairs a task id with the value its worker produced, so callers
// can recover per-cluster ordering after the parallel phase regardless
// of completion order.
type Result[T any] struct {
	ID    int32
	Value T
}

// Task is the work a single worker performs for one id. A non-nil error
// fails the whole run: the remaining ids are still processed, and Run
// returns the first error observed (which, by goroutine scheduling, need
// not be the smallest id) instead of any results.
type Task[T any] func(id int32) (T, error)

// Run executes fn once per id in ids, spread across a fixed pool of at
// most poolSize goroutines (poolSize <= 0 selects GOMAXPROCS). Each
// worker pulls ids from a shared channel — disjoint shards, no
// cross-worker reads during a task — and appends its Result under a
// single mutex held only for the append, per spec.md §5.
//
// Run blocks until every id has been processed, even after an error.
// The returned slice order is unspecified; sort or index by Result.ID
// if a stable order is required downstream.
func Run[T any](ids []int32, poolSize int, fn Task[T]) ([]Result[T], error) {
	if poolSize <= 0 {
		poolSize = runtime.GOMAXPROCS(0)
	}
	if poolSize > len(ids) {
		poolSize = len(ids)
	}
	if poolSize == 0 {
		return nil, nil
	}

	idCh := make(chan int32)
	var (
		mu      sync.Mutex
		results = make([]Result[T], 0, len(ids))
		firstErr error
	)

	var wg sync.WaitGroup
	wg.Add(poolSize)
	for w := 0; w < poolSize; w++ {
		go func() {
			defer wg.Done()
			for id := range idCh {
				value, err := fn(id)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, Result[T]{ID: id, Value: value})
				}
				mu.Unlock()
			}
		}()
	}

	for _, id := range ids {
		idCh <- id
	}
	close(idCh)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
