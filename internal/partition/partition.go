// Package partition groups a candidate answer set by feedback pattern under
// a chosen guess; it is the inner loop every oracle and the optimal search
// call on every candidate guess.
package partition

import "go-pokedle/internal/judge"

// Partition groups rem (an ordered candidate-answer subset) by
// table.At(guess, ans), dropping the ALL_CORRECT bucket (spec.md §4.3,
// §3 invariant 5). Buckets preserve the relative order of rem so that a
// stable iteration over rem yields deterministic, order-preserving
// sub-subsets (spec.md §9's "subset key representation" requirement).
func Partition(rem []int, guess int, table *judge.Table) map[judge.Judge][]int {
	out := make(map[judge.Judge][]int)
	for _, ans := range rem {
		j := table.At(guess, ans)
		if j == judge.ALLCORRECT {
			continue
		}
		out[j] = append(out[j], ans)
	}
	return out
}
