// Package bounds implements the Lower-Bound Oracle and the Greedy
// Upper-Bound Oracle (spec.md §4.5, §4.6).
package bounds

// CandidateGuesses returns the guesses a bucket of size len(rem) is allowed
// to consider. spec.md §4.5/§4.6: for |rem|==3, restricting to rem itself is
// sound only because the objective is "sum of guesses to identify every
// answer" (spec.md §9 Open Question) — any outside guess costs at least
// 2*3=6 while a guess from rem can achieve 1+2+3=6, so nothing is lost and
// the search space shrinks from |G| to 3. For any other size, the full
// guess set G is used.
func CandidateGuesses(rem, guesses []int) []int {
	if len(rem) == 3 {
		out := make([]int, len(rem))
		copy(out, rem)
		return out
	}
	return guesses
}
