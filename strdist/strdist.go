// Package strdist provides discrete string distance metrics shared by the
// approximate-matching structures (see bktree).
//
// Complexity:
//
//	– Levenshtein: O(len(a)·len(b)) time, O(min(len(a),len(b))) space
//	– Hamming:     O(n) time, O(1) space; defined only for equal lengths
package strdist

import "errors"

// ErrLengthMismatch is returned by Hamming when the inputs differ in length.
var ErrLengthMismatch = errors.New("strdist: hamming distance requires equal-length strings")

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, and substitutions transforming a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Hamming returns the number of rune positions at which a and b differ.
func Hamming(a, b string) (int, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, ErrLengthMismatch
	}
	d := 0
	for i := range ra {
		if ra[i] != rb[i] {
			d++
		}
	}

	return d, nil
}
