package pool

import (
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	for _, workers := range []int{1, 4, 8} {
		p := New(workers)
		const n = 50
		var seen [n]int32
		ForEach(p, n, func(i int) {
			atomic.AddInt32(&seen[i], 1)
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("workers=%d: index %d visited %d times, want 1", workers, i, c)
			}
		}
	}
}

func TestNewDefaultsToNumCPU(t *testing.T) {
	p := New(0)
	if p.Workers() <= 0 {
		t.Fatalf("Workers() = %d, want > 0", p.Workers())
	}
}
