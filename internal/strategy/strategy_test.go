package strategy

import (
	"bytes"
	"strings"
	"testing"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/search"
	"go-pokedle/internal/vocabulary"
)

func buildSolvedCache(words []string, threads int) (*search.Solver, []int) {
	tbl := judge.Build(len(words), len(words), func(i int) string { return words[i] })
	all := make([]int, len(words))
	for i := range all {
		all[i] = i
	}
	s := search.NewSolver(tbl, all, threads)
	s.Solve(all, search.INFTY)
	return s, all
}

func TestGuessSequenceLengthsSumToBest(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF", "ABDEF", "ACDEF"}
	s, all := buildSolvedCache(words, 1)
	best := s.Solve(all, search.INFTY)

	seq := BuildGuessSequences(s.Cache, len(words), all)
	sum := 0
	for _, line := range seq {
		sum += len(line)
	}
	if sum != best {
		t.Fatalf("sum of sequence lengths = %d, want best[A] = %d", sum, best)
	}
	for i, line := range seq {
		if len(line) == 0 || line[len(line)-1] != i {
			t.Fatalf("seq[%d] = %v does not terminate with the answer itself", i, line)
		}
	}
}

func TestGuessSequenceFileRoundTrip(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF", "ABDEF", "ACDEF"}
	s, all := buildSolvedCache(words, 1)
	seq := BuildGuessSequences(s.Cache, len(words), all)

	var buf bytes.Buffer
	if err := WriteGuessSequences(&buf, seq); err != nil {
		t.Fatalf("WriteGuessSequences: %v", err)
	}

	parsed, err := ReadGuessSequences(&buf)
	if err != nil {
		t.Fatalf("ReadGuessSequences: %v", err)
	}
	if len(parsed) != len(seq) {
		t.Fatalf("parsed %d lines, want %d", len(parsed), len(seq))
	}
	for i := range seq {
		if len(parsed[i]) != len(seq[i]) {
			t.Fatalf("line %d: parsed %v, want %v", i, parsed[i], seq[i])
		}
		for k := range seq[i] {
			if parsed[i][k] != seq[i][k] {
				t.Fatalf("line %d: parsed %v, want %v", i, parsed[i], seq[i])
			}
		}
	}
}

func TestBuildTreeAndWalk(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF", "ABDEF", "ACDEF"}
	s, all := buildSolvedCache(words, 1)
	seq := BuildGuessSequences(s.Cache, len(words), all)

	tbl := judge.Build(len(words), len(words), func(i int) string { return words[i] })
	root, err := BuildTree(tbl, seq, all, 0)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	for _, ans := range all {
		node := root
		rounds := 0
		for {
			guess := node.Guess
			j := tbl.At(guess, ans)
			node = node.Next(j)
			rounds++
			if node.Terminal {
				break
			}
		}
		if rounds != len(seq[ans]) {
			t.Fatalf("answer %d: walked %d rounds, want %d", ans, rounds, len(seq[ans]))
		}
	}
}

func TestReadGuessSequencesRejectsMalformedToken(t *testing.T) {
	_, err := ReadGuessSequences(strings.NewReader("0 1 x\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed guess index token")
	}
}

func TestBuildTreeDetectsInconsistentStrategy(t *testing.T) {
	words := []string{"ABCDE", "ABCDF", "ABCEF"}
	tbl := judge.Build(len(words), len(words), func(i int) string { return words[i] })

	// Answers 0 and 1 disagree on the guess played at depth 0, violating
	// the tree-consistency invariant (spec.md §6).
	seq := [][]int{
		{2, 0},
		{1, 1},
		{1, 2},
	}
	_, err := BuildTree(tbl, seq, []int{0, 1}, 0)
	if err == nil {
		t.Fatal("expected a tree-consistency violation error")
	}
	if !strings.Contains(err.Error(), "tree-consistency violation") {
		t.Fatalf("error %q does not mention tree-consistency violation", err)
	}
}

func TestTreeJSONShape(t *testing.T) {
	words := []string{"ABCDE", "FGHIJ"}
	s, all := buildSolvedCache(words, 1)
	seq := BuildGuessSequences(s.Cache, len(words), all)
	tbl := judge.Build(len(words), len(words), func(i int) string { return words[i] })
	root, err := BuildTree(tbl, seq, all, 0)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	v, err := vocabulary.New(words)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, root, v); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"guess":`) || !strings.Contains(out, `"rem":`) || !strings.Contains(out, `"edges":`) {
		t.Fatalf("json missing expected keys: %s", out)
	}
	if !strings.Contains(out, "{}") {
		t.Fatalf("json missing a terminal node: %s", out)
	}
}
