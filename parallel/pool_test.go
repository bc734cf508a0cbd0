package parallel

import (
	"sync/atomic"
	"testing"
)

func TestEachVisitsEveryIndex(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		pool := Start(workers)
		if pool.Workers() != workers {
			t.Errorf("workers = %d, want %d", pool.Workers(), workers)
		}

		const n = 100
		slots := make([]int, n)
		var calls atomic.Int64
		Each(pool.Do, pool.Wait, n, func(i int) {
			calls.Add(1)
			slots[i] = i * i
		})

		if got := calls.Load(); got != n {
			t.Errorf("workers=%d: calls = %d, want %d", workers, got, n)
		}
		for i, v := range slots {
			if v != i*i {
				t.Errorf("workers=%d: slot %d = %d, want %d", workers, i, v, i*i)
				break
			}
		}
	}
}

func TestStartDefaultsToGOMAXPROCS(t *testing.T) {
	pool := Start(0)
	defer pool.Wait(true)
	if pool.Workers() < 1 {
		t.Errorf("workers = %d, want at least 1", pool.Workers())
	}
}

func TestWaitTwice(t *testing.T) {
	pool := Start(4)
	Each(pool.Do, pool.Wait, 3, func(int) {})
	pool.Wait(true)
}
