// Package vocabulary holds the immutable, zero-based indexed word list the
// rest of the solver is built on. The index assigned to a word at load time
// is the sole identity used everywhere else (judge tables, candidate
// subsets, guess sequences).
package vocabulary

import (
	_ "embed"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const WordLength = 5

//go:embed pokemon_words.txt
var defaultWordList string

// Vocabulary is an immutable, ordered sequence of words.
type Vocabulary struct {
	words []string
}

// New builds a Vocabulary from an already-split, ordered word list. Callers
// that need the bundled default list should use Default.
func New(words []string) (*Vocabulary, error) {
	for i, w := range words {
		if len(w) != WordLength {
			return nil, errors.Errorf("vocabulary: word %d (%q) has length %d, want %d", i, w, len(w), WordLength)
		}
	}
	cp := make([]string, len(words))
	copy(cp, words)
	return &Vocabulary{words: cp}, nil
}

// Default returns the Vocabulary backed by the embedded Pokémon word list.
func Default() (*Vocabulary, error) {
	return Load(strings.NewReader(defaultWordList))
}

// Load parses a newline-delimited word list, one word per line, blank lines
// and surrounding whitespace ignored.
func Load(r io.Reader) (*Vocabulary, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "vocabulary: read word list")
	}
	var words []string
	for _, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	return New(words)
}

// Len returns the number of words in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Word returns the word at index i.
func (v *Vocabulary) Word(i int) string {
	return v.words[i]
}

// ValidAnswer reports whether index i names a word usable as a secret
// answer: in range and exactly five characters (guaranteed at load time,
// checked again here so the predicate is self-contained per spec.md §4.1).
func (v *Vocabulary) ValidAnswer(i int) bool {
	if i < 0 || i >= len(v.words) {
		return false
	}
	return len(v.words[i]) == WordLength
}

// ValidGuess reports whether index i is usable as a guess given the guess
// bound guessUntil: all words in [0, guessUntil) are valid guesses.
func (v *Vocabulary) ValidGuess(i, guessUntil int) bool {
	return i >= 0 && i < guessUntil && i < len(v.words)
}

// AnswerSet returns A = {i < ansUntil : ValidAnswer(i)}, ascending order.
func (v *Vocabulary) AnswerSet(ansUntil int) []int {
	if ansUntil > v.Len() {
		ansUntil = v.Len()
	}
	a := make([]int, 0, ansUntil)
	for i := 0; i < ansUntil; i++ {
		if v.ValidAnswer(i) {
			a = append(a, i)
		}
	}
	return a
}

// GuessSet returns G = {i < guessUntil}, ascending order.
func (v *Vocabulary) GuessSet(guessUntil int) []int {
	if guessUntil > v.Len() {
		guessUntil = v.Len()
	}
	g := make([]int, guessUntil)
	for i := range g {
		g[i] = i
	}
	return g
}
