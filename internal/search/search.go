// Package search implements the branch-and-bound Optimal Search (spec.md
// §4.7): the core of the solver, pruned by the Lower-Bound Oracle and
// seeded by the Greedy Upper-Bound Oracle, sharing one memo Cache across
// however many goroutines the caller's worker pool runs.
package search

import (
	"math"
	"sort"

	"go-pokedle/internal/bounds"
	"go-pokedle/internal/judge"
	"go-pokedle/internal/memo"
	"go-pokedle/internal/partition"
	"go-pokedle/internal/pool"
)

// INFTY guards against overflow when added to |S| (spec.md §4.7).
const INFTY = math.MaxInt32 / 2

// LBDepth is the default recursion depth passed to the Lower-Bound Oracle;
// deeper proofs cost more than the additional pruning saves in measured
// configurations (spec.md §4.7).
const LBDepth = 1

// Solver ties the shared cache, judge table, candidate guess set, and
// worker pool together for repeated Solve calls.
type Solver struct {
	Cache    *memo.Cache
	Table    *judge.Table
	Guesses  []int
	Pool     *pool.Pool
	LBDepth  int
}

// NewSolver returns a Solver ready to run Solve over table/guesses using a
// pool of the given width (0 defaults to runtime.NumCPU, per internal/pool).
func NewSolver(table *judge.Table, guesses []int, numThreads int) *Solver {
	return &Solver{
		Cache:   memo.New(),
		Table:   table,
		Guesses: guesses,
		Pool:    pool.New(numThreads),
		LBDepth: LBDepth,
	}
}

// Solve computes solve(S, ub): the optimal total guess count for rem, or
// INFTY if provably no strategy achieves fewer than ub (spec.md §4.7).
func (s *Solver) Solve(rem []int, ub int) int {
	n := len(rem)
	if n == 0 {
		panic("search: Solve called on empty subset")
	}
	if n == 1 {
		return 1
	}
	if n == 2 {
		return 3
	}

	id := s.Cache.Registry.GetOrInsert(rem)
	if v, ok := s.Cache.Best(id); ok {
		return v
	}

	if bounds.LowerBound(s.Cache, s.Table, s.Pool, s.Guesses, rem, s.LBDepth) >= ub {
		return INFTY
	}

	v := bounds.Greedy(s.Cache, s.Table, s.Pool, s.Guesses, rem)

	candidates := bounds.CandidateGuesses(rem, s.Guesses)
	partitions := make([]map[judge.Judge][]int, len(candidates))
	entropy := make([]float64, len(candidates))
	pool.ForEach(s.Pool, len(candidates), func(i int) {
		partitions[i] = partition.Partition(rem, candidates[i], s.Table)
		var e float64
		for _, bucket := range partitions[i] {
			x := float64(len(bucket))
			e += math.Log2(x) * x
		}
		entropy[i] = e
	})

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if entropy[ia] != entropy[ib] {
			return entropy[ia] < entropy[ib]
		}
		return candidates[ia] < candidates[ib]
	})

	for _, idx := range order {
		guess := candidates[idx]
		parts := partitions[idx]

		lbg := n
		for _, bucket := range parts {
			lbg += bounds.LowerBound(s.Cache, s.Table, s.Pool, s.Guesses, bucket, s.LBDepth)
		}
		if lbg >= v {
			continue
		}

		tmp := n
		for _, bucket := range parts {
			tmp += s.Solve(bucket, v-(tmp-n))
			if tmp >= v {
				break
			}
		}

		if tmp < v {
			v = tmp
			s.Cache.SetWitness(id, memo.Witness{Value: v, Guess: guess, Partition: parts})
		}
	}

	s.Cache.SetBest(id, v)
	return v
}
