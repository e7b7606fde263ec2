// Package judge computes Wordle-style feedback for a (guess, answer) pair
// and materializes the judge table the rest of the solver treats as a fixed
// lookup.
package judge

import mapset "github.com/deckarep/golang-set"

// Trit values packed two bits per position.
const (
	Absent   = 0
	Misplaced = 1
	Exact    = 2
)

// Judge is a five-trit feedback pattern packed into a 10-bit integer, low
// bits = position 0.
type Judge uint32

// ALLCORRECT is the sentinel pattern where every position is Exact.
const ALLCORRECT Judge = Exact | Exact<<2 | Exact<<4 | Exact<<6 | Exact<<8

const wordLength = 5

// StringLength is the length of a judge string (one digit per position).
const StringLength = wordLength

// Digit returns the trit at position i (0-indexed, low bits first).
func (j Judge) Digit(i int) int {
	return int(j>>(2*uint(i))) & 0b11
}

// String renders the five-digit judge string, position 0 first, used both
// for JSON edge keys and the interactive app's input format.
func (j Judge) String() string {
	b := make([]byte, wordLength)
	for i := 0; i < wordLength; i++ {
		b[i] = byte('0' + j.Digit(i))
	}
	return string(b)
}

// Parse reads a five-digit judge string (digits in {0,1,2}, position 0
// first) as produced by String / the interactive app's input.
func Parse(s string) (Judge, bool) {
	if len(s) != wordLength {
		return 0, false
	}
	var j Judge
	for i := 0; i < wordLength; i++ {
		d := s[i]
		if d < '0' || d > '2' {
			return 0, false
		}
		j |= Judge(d-'0') << (2 * uint(i))
	}
	return j, true
}

// Compute implements the two-pass Wordle feedback algorithm: an exact-match
// pass, then a left-to-right misplaced-letter pairing pass over whatever
// positions and characters the exact pass left unmatched.
func Compute(guess, answer string) Judge {
	var result Judge
	guessUsed := mapset.NewThreadUnsafeSet()
	answerUsed := mapset.NewThreadUnsafeSet()

	for i := 0; i < wordLength; i++ {
		if guess[i] == answer[i] {
			result |= Judge(Exact) << (2 * uint(i))
			guessUsed.Add(i)
			answerUsed.Add(i)
		}
	}

	for i := 0; i < wordLength; i++ {
		if guessUsed.Contains(i) {
			continue
		}
		for k := 0; k < wordLength; k++ {
			if answerUsed.Contains(k) {
				continue
			}
			if guess[i] == answer[k] {
				result |= Judge(Misplaced) << (2 * uint(i))
				guessUsed.Add(i)
				answerUsed.Add(k)
				break
			}
		}
	}

	return result
}

// Table is the precomputed |G|×|A| judge lookup: Table.At(guess, ans).
// Indexed outer-by-guess so partition evaluation for a fixed guess scans a
// contiguous row.
type Table struct {
	guessUntil int
	ansUntil   int
	data       []Judge // guess*ansUntil + ans
}

// Build materializes the judge table for guesses in [0, guessUntil) against
// answers in [0, ansUntil), given the word accessor. words(i) must return
// the word at index i.
func Build(guessUntil, ansUntil int, words func(int) string) *Table {
	t := &Table{
		guessUntil: guessUntil,
		ansUntil:   ansUntil,
		data:       make([]Judge, guessUntil*ansUntil),
	}
	for g := 0; g < guessUntil; g++ {
		gw := words(g)
		base := g * ansUntil
		for a := 0; a < ansUntil; a++ {
			t.data[base+a] = Compute(gw, words(a))
		}
	}
	return t
}

// At returns the precomputed judge for (guess, ans).
func (t *Table) At(guess, ans int) Judge {
	return t.data[guess*t.ansUntil+ans]
}
