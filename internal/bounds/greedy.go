package bounds

import (
	"math"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/memo"
	"go-pokedle/internal/partition"
	"go-pokedle/internal/pool"
)

// score implements the greedy bucket-penalty heuristic from spec.md §4.6:
// Σ_T (0.1·|T| + log2|T|) · |T|, penalizing both bucket size and skew. The
// 0.1 coefficient is a tuned constant from the original solver
// (original_source/src/bin/solve.rs) and is not derived; spec.md §9 notes
// it affects only search startup time, never optimality.
func score(parts map[judge.Judge][]int) float64 {
	var s float64
	for _, bucket := range parts {
		x := float64(len(bucket))
		s += (0.1*x + math.Log2(x)) * x
	}
	return s
}

// Greedy computes greedy(S): a feasible one-guess-lookahead strategy and its
// score, recording the witness into the cache so the optimal search can
// reuse it as a warm upper bound (spec.md §4.6).
func Greedy(c *memo.Cache, table *judge.Table, p *pool.Pool, guesses, rem []int) int {
	n := len(rem)
	if n == 0 {
		panic("bounds: Greedy called on empty subset")
	}
	if n == 1 {
		return 1
	}
	if n == 2 {
		return 3
	}

	id := c.Registry.GetOrInsert(rem)
	if w, ok := c.Witness(id); ok {
		return w.Value
	}

	candidates := CandidateGuesses(rem, guesses)
	partitions := make([]map[judge.Judge][]int, len(candidates))
	scores := make([]float64, len(candidates))
	pool.ForEach(p, len(candidates), func(i int) {
		partitions[i] = partition.Partition(rem, candidates[i], table)
		scores[i] = score(partitions[i])
	})

	bestIdx := 0
	for i := 1; i < len(candidates); i++ {
		if scores[i] < scores[bestIdx] ||
			(scores[i] == scores[bestIdx] && candidates[i] < candidates[bestIdx]) {
			bestIdx = i
		}
	}

	bestGuess := candidates[bestIdx]
	bestParts := partitions[bestIdx]

	total := n
	for _, bucket := range bestParts {
		total += Greedy(c, table, p, guesses, bucket)
	}

	c.SetWitness(id, memo.Witness{Value: total, Guess: bestGuess, Partition: bestParts})
	return total
}
