// File: internal/worker/worker_test.go
package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool(4, 16)

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Stop()

	require.EqualValues(t, 100, count.Load())
}

func TestPoolStopIsIdempotent(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Submit(func() {})

	require.NotPanics(t, func() {
		pool.Stop()
		pool.Stop()
	})
}

func TestPoolSubmitAfterStopIsDropped(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Stop()

	var count atomic.Int64
	require.NotPanics(t, func() {
		pool.Submit(func() { count.Add(1) })
	})
	require.Zero(t, count.Load())
}

func TestPoolConcurrentSubmit(t *testing.T) {
	pool := NewPool(2, 4)

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				pool.Submit(func() { count.Add(1) })
			}
		}()
	}
	wg.Wait()
	pool.Stop()

	require.EqualValues(t, 80, count.Load())
}

func TestSyncDispatcher(t *testing.T) {
	ran := false
	SyncDispatcher{}.Submit(func() { ran = true })
	require.True(t, ran)
}
