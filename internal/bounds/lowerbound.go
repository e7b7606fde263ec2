package bounds

import (
	"go-pokedle/internal/judge"
	"go-pokedle/internal/memo"
	"go-pokedle/internal/partition"
	"go-pokedle/internal/pool"
)

// LowerBound computes lb(S, d): an admissible lower bound on best[S],
// recursively computed and memoized per (subset, depth) (spec.md §4.5).
//
//   - Base cases: |rem| <= 2 or depth == 0 -> 2*|rem|-1.
//   - Recursion: |rem| + min over candidate guesses of the sum of
//     LowerBound(bucket, depth-1) across that guess's partition buckets.
//
// Admissibility follows by induction on depth: the true cost of solving rem
// under any guess is exactly |rem| + sum of true costs of its buckets, so
// taking the min over guesses of a lower bound on each bucket lower-bounds
// the true minimum (spec.md §4.5).
func LowerBound(c *memo.Cache, table *judge.Table, p *pool.Pool, guesses, rem []int, depth int) int {
	n := len(rem)
	if n == 0 {
		panic("bounds: LowerBound called on empty subset")
	}
	if n <= 2 || depth == 0 {
		return 2*n - 1
	}

	id := c.Registry.GetOrInsert(rem)
	if v, ok := c.LowerBound(id, depth); ok {
		return v
	}

	candidates := CandidateGuesses(rem, guesses)
	partitions := make([]map[judge.Judge][]int, len(candidates))
	pool.ForEach(p, len(candidates), func(i int) {
		partitions[i] = partition.Partition(rem, candidates[i], table)
	})

	best := -1
	for _, parts := range partitions {
		sum := n
		for _, bucket := range parts {
			sum += LowerBound(c, table, p, guesses, bucket, depth-1)
		}
		if best == -1 || sum < best {
			best = sum
		}
	}

	if best < 2*n-1 {
		panic("bounds: LowerBound produced a value below the trivial bound")
	}

	c.SetLowerBound(id, depth, best)
	return best
}
