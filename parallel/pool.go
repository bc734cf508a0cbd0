// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool hands jobs to its workers. With a single worker Do runs the job
// inline and Wait is a no-op.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start launches numWorkers goroutines, or GOMAXPROCS of them when
// numWorkers is below one.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}

// Each runs fn(i) for every i in [0, n) through worker, then waits for all of
// them with wait(true). Results are expected to go to per-index slots so that
// callers can consume them in order afterwards.
func Each(worker WorkerFunc, wait WaitFunc, n int, fn func(i int)) {
	for i := range n {
		worker(func() { fn(i) })
	}
	wait(true)
}
