// Package memo holds the three shared memo tables spec.md §3/§5 describes
// (best, memo, lb) plus the Set-Identity Registry, all guarded by
// fine-grained mutexes per table (spec.md §5: "a single mutex (or
// fine-grained locks; behavior is equivalent)").
package memo

import (
	"sync"

	"go-pokedle/internal/candset"
	"go-pokedle/internal/judge"
)

// Witness records the best guess found so far for a subset and the
// partition it produces: memo[S] = (v, g*, P*).
type Witness struct {
	Value     int
	Guess     int
	Partition map[judge.Judge][]int
}

// LowerBoundEntry records the last lower bound computed for a subset and
// the depth it is valid at: lb[S] = (d, ℓ). Reused only when the cached
// depth is at least as deep as the one requested (deeper proofs dominate).
type LowerBoundEntry struct {
	Depth int
	Value int
}

// Cache is the shared, concurrency-safe state every oracle and the optimal
// search read from and write to.
type Cache struct {
	Registry *candset.Registry

	bestMu sync.RWMutex
	best   map[int]int

	witnessMu sync.RWMutex
	witness   map[int]Witness

	lbMu sync.RWMutex
	lb   map[int]LowerBoundEntry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		Registry: candset.NewRegistry(),
		best:     make(map[int]int),
		witness:  make(map[int]Witness),
		lb:       make(map[int]LowerBoundEntry),
	}
}

// Best returns best[id] if proven, else (0, false).
func (c *Cache) Best(id int) (int, bool) {
	c.bestMu.RLock()
	defer c.bestMu.RUnlock()
	v, ok := c.best[id]
	return v, ok
}

// SetBest records best[id] = v. Write-once per spec.md §3's lifecycle rule;
// callers only ever call this after a subset's search has concluded.
func (c *Cache) SetBest(id, v int) {
	c.bestMu.Lock()
	defer c.bestMu.Unlock()
	c.best[id] = v
}

// Witness returns memo[id] if present.
func (c *Cache) Witness(id int) (Witness, bool) {
	c.witnessMu.RLock()
	defer c.witnessMu.RUnlock()
	w, ok := c.witness[id]
	return w, ok
}

// SetWitness records memo[id], replacing any previous (strictly improving)
// witness.
func (c *Cache) SetWitness(id int, w Witness) {
	c.witnessMu.Lock()
	defer c.witnessMu.Unlock()
	c.witness[id] = w
}

// LowerBound returns lb[id] if its cached depth is at least requested
// depth, per the monotone-in-depth reuse rule (spec.md §4.5).
func (c *Cache) LowerBound(id, depth int) (int, bool) {
	c.lbMu.RLock()
	defer c.lbMu.RUnlock()
	e, ok := c.lb[id]
	if !ok || e.Depth < depth {
		return 0, false
	}
	return e.Value, true
}

// SetLowerBound records lb[id] = (depth, value), overwriting any shallower
// cached proof.
func (c *Cache) SetLowerBound(id, depth, value int) {
	c.lbMu.Lock()
	defer c.lbMu.Unlock()
	c.lb[id] = LowerBoundEntry{Depth: depth, Value: value}
}

// Sizes reports the current size of each table, for progress logging.
func (c *Cache) Sizes() (best, witness, lb int) {
	c.bestMu.RLock()
	best = len(c.best)
	c.bestMu.RUnlock()
	c.witnessMu.RLock()
	witness = len(c.witness)
	c.witnessMu.RUnlock()
	c.lbMu.RLock()
	lb = len(c.lb)
	c.lbMu.RUnlock()
	return
}
