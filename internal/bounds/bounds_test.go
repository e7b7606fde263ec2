package bounds

import (
	"testing"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/memo"
	"go-pokedle/internal/pool"
)

func setup(words []string) (*judge.Table, *memo.Cache, *pool.Pool, []int) {
	tbl := judge.Build(len(words), len(words), func(i int) string { return words[i] })
	c := memo.New()
	p := pool.New(1)
	all := make([]int, len(words))
	for i := range all {
		all[i] = i
	}
	return tbl, c, p, all
}

func TestLowerBoundBaseCases(t *testing.T) {
	words := []string{"ABCDE", "FGHIJ", "KLMNO"}
	tbl, c, p, all := setup(words)

	if got := LowerBound(c, tbl, p, all, []int{0}, 1); got != 1 {
		t.Errorf("LowerBound singleton = %d, want 1", got)
	}
	if got := LowerBound(c, tbl, p, all, []int{0, 1}, 1); got != 3 {
		t.Errorf("LowerBound pair = %d, want 3", got)
	}
}

func TestLowerBoundAdmissibleAgainstGreedy(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF", "ABDEF", "ACDEF"}
	tbl, c, p, all := setup(words)

	lb := LowerBound(c, tbl, p, all, all, 1)
	g := Greedy(c, tbl, p, all, all)
	if lb > g {
		t.Errorf("lower bound %d exceeds a feasible upper bound %d", lb, g)
	}
}

func TestGreedyBaseCases(t *testing.T) {
	words := []string{"ABCDE", "FGHIJ", "KLMNO"}
	tbl, c, p, all := setup(words)

	if got := Greedy(c, tbl, p, all, []int{0}); got != 1 {
		t.Errorf("Greedy singleton = %d, want 1", got)
	}
	if got := Greedy(c, tbl, p, all, []int{0, 1}); got != 3 {
		t.Errorf("Greedy pair = %d, want 3", got)
	}
}

func TestGreedyThreeIdenticalPrefix(t *testing.T) {
	// Three answers sharing a four-character prefix, differing in the last
	// position: optimal first guess is in the set, best = 6 (spec.md §8
	// scenario 3).
	words := []string{"ABCDA", "ABCDB", "ABCDC"}
	tbl, c, p, all := setup(words)
	if got := Greedy(c, tbl, p, all, all); got != 6 {
		t.Errorf("Greedy three-identical-prefix = %d, want 6", got)
	}
}

func TestMonotoneDepthReuse(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF", "ABDEF", "ACDEF"}
	tbl, c, p, all := setup(words)

	shallow := LowerBound(c, tbl, p, all, all, 1)
	deep := LowerBound(c, tbl, p, all, all, 2)
	if deep < shallow {
		t.Errorf("deeper lower bound %d is weaker than shallower %d", deep, shallow)
	}
}
