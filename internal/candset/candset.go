// Package candset represents candidate answer subsets and assigns them
// stable integer identities for use as memoization keys (spec.md §4.4).
package candset

import (
	"encoding/binary"
	"sync"

	"github.com/willf/bitset"
)

// key returns the canonical registry key for an ordered subset: since the
// answer set always starts ordered (0..n-1) and Partition preserves input
// order (spec.md §9), a bit-set over the subset's members is equivalent to
// the ordered sequence as a lookup key, and is far cheaper to hash/compare.
// Built by walking the set bits with NextSet rather than trusting any
// word-level export from the bitset, so the key is just the ascending
// member indices re-serialized.
func key(subset []int) string {
	if len(subset) == 0 {
		return ""
	}
	max := subset[0]
	for _, v := range subset {
		if v > max {
			max = v
		}
	}
	bs := bitset.New(uint(max + 1))
	for _, v := range subset {
		bs.Set(uint(v))
	}

	buf := make([]byte, 0, 4*len(subset))
	var tmp [4]byte
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		binary.LittleEndian.PutUint32(tmp[:], uint32(i))
		buf = append(buf, tmp[:]...)
	}
	return string(buf)
}

// Registry assigns monotonically increasing integer ids to candidate
// subsets on first sighting. Thread-safe.
type Registry struct {
	mu  sync.Mutex
	ids map[string]int
	n   int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// GetOrInsert returns the stable id for subset, assigning a new one on
// first sighting.
func (r *Registry) GetOrInsert(subset []int) int {
	k := key(subset)
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[k]; ok {
		return id
	}
	id := r.n
	r.n++
	r.ids[k] = id
	return id
}

// Len returns the number of distinct subsets registered so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}
