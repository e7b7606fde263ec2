// Package strategy implements the Strategy Emitter (spec.md §4.8): DFS
// reconstruction of per-answer guess sequences and the decision tree, plus
// their on-disk/JSON serialization.
package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/memo"
)

// BuildGuessSequences runs the DFS from spec.md §4.8 / grounded on
// original_source/src/bin/solve.rs's dfs_build_guess_seq: for every s in
// the full answer set, seq[s] is the ordered list of guesses played when
// the secret is s, terminating with s itself. n must be large enough to
// index by the largest answer value in rem (typically ansUntil, not
// len(rem), since answer indices need not be contiguous from 0).
func BuildGuessSequences(c *memo.Cache, n int, rem []int) [][]int {
	seq := make([][]int, n)
	buildGuessSeq(c, rem, seq)
	return seq
}

func buildGuessSeq(c *memo.Cache, rem []int, seq [][]int) {
	if len(rem) == 1 {
		s := rem[0]
		seq[s] = append(seq[s], s)
		return
	}
	if len(rem) == 2 {
		// spec.md §4.8 base case: the smaller-indexed answer is guessed
		// first (this is the convention the search itself commits to,
		// since Solve's |S|==2 base case never evaluates a guess — any
		// guess in the pair reaches the same cost of 3, so the sequence
		// just needs a fixed, deterministic convention here).
		a, b := rem[0], rem[1]
		if b < a {
			a, b = b, a
		}
		seq[a] = append(seq[a], a)
		seq[b] = append(seq[b], a, b)
		return
	}

	id := c.Registry.GetOrInsert(rem)
	w, ok := c.Witness(id)
	if !ok {
		panic("strategy: no witness recorded for a non-singleton subset; search did not complete")
	}

	for _, s := range rem {
		seq[s] = append(seq[s], w.Guess)
	}
	for _, bucket := range w.Partition {
		buildGuessSeq(c, bucket, seq)
	}
}

// MaxGuessIndex returns the largest guess index appearing anywhere in seq,
// or -1 if seq is empty or holds no guesses. Callers rebuilding a judge
// table from a guess-sequence file need this: guess-until may have been
// larger than ans-until when the file was produced by solve, so the
// guess indices recorded can exceed len(seq)-1.
func MaxGuessIndex(seq [][]int) int {
	max := -1
	for _, line := range seq {
		for _, g := range line {
			if g > max {
				max = g
			}
		}
	}
	return max
}

// WriteGuessSequences writes the guess-sequence file: line i (0-indexed)
// holds the whitespace-separated guess indices for answer i (spec.md §6).
func WriteGuessSequences(w io.Writer, seq [][]int) error {
	bw := bufio.NewWriter(w)
	for _, line := range seq {
		parts := make([]string, len(line))
		for i, g := range line {
			parts[i] = strconv.Itoa(g)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return errors.Wrap(err, "strategy: write guess sequence")
		}
	}
	return bw.Flush()
}

// ReadGuessSequences parses a guess-sequence file as produced by
// WriteGuessSequences, grounded on original_source/src/tree.rs's
// DecisionTree::new.
func ReadGuessSequences(r io.Reader) ([][]int, error) {
	var seq [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		var guesses []int
		if line != "" {
			for _, tok := range strings.Fields(line) {
				g, err := strconv.Atoi(tok)
				if err != nil {
					return nil, errors.Wrapf(err, "strategy: line %d: malformed guess index %q", lineNo, tok)
				}
				guesses = append(guesses, g)
			}
		}
		seq = append(seq, guesses)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "strategy: read guess sequence")
	}
	return seq, nil
}

// Node is a decision-tree node: NonTerminal carries a guess, the remaining
// answer set at this point, and edges keyed by Judge; Terminal has none
// (spec.md §4.8).
type Node struct {
	Terminal bool
	Guess    int
	RemAns   []int
	Edges    map[judge.Judge]*Node
}

// BuildTree builds the decision tree from the guess-sequence file's
// contents, asserting the tree-consistency invariant as it goes (spec.md
// §6: "for any two answers whose prefixes agree through round d-1, they
// share the same guess at round d"), grounded on
// original_source/src/tree.rs's DecisionTree::build.
func BuildTree(table *judge.Table, guessSeq [][]int, rem []int, depth int) (*Node, error) {
	if depth >= len(guessSeq[rem[0]]) {
		return nil, errors.Errorf("strategy: answer %d has no guess at depth %d (tree-consistency violation)", rem[0], depth)
	}
	guess := guessSeq[rem[0]][depth]
	for _, s := range rem[1:] {
		if depth >= len(guessSeq[s]) {
			return nil, errors.Errorf("strategy: answer %d has no guess at depth %d (tree-consistency violation)", s, depth)
		}
		if guessSeq[s][depth] != guess {
			return nil, errors.Errorf("strategy: answers disagree on guess at depth %d: %d chose %d, %d chose %d (tree-consistency violation)",
				depth, rem[0], guess, s, guessSeq[s][depth])
		}
	}

	parts := make(map[judge.Judge][]int)
	for _, ans := range rem {
		j := table.At(guess, ans)
		if j == judge.ALLCORRECT {
			continue
		}
		parts[j] = append(parts[j], ans)
	}

	edges := make(map[judge.Judge]*Node, len(parts)+1)
	for j, bucket := range parts {
		child, err := BuildTree(table, guessSeq, bucket, depth+1)
		if err != nil {
			return nil, err
		}
		edges[j] = child
	}

	isWitness := false
	for _, ans := range rem {
		if ans == guess {
			isWitness = true
			break
		}
	}
	if isWitness {
		edges[judge.ALLCORRECT] = &Node{Terminal: true}
	}

	return &Node{Guess: guess, RemAns: rem, Edges: edges}, nil
}

// Next walks one edge of the tree for the given judge, grounded on
// original_source/src/tree.rs's Node::next. Panics on an edge that does not
// exist, matching spec.md §7's "incorrect judge" being a fatal internal
// condition once the tree itself is trusted; callers at the interactive
// boundary validate judges before calling Next (see cmd/app).
func (n *Node) Next(j judge.Judge) *Node {
	if n.Terminal {
		panic("strategy: Next called on a Terminal node")
	}
	child, ok := n.Edges[j]
	if !ok {
		panic("strategy: incorrect judge")
	}
	return child
}
