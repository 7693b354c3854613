// Package bwt implements the Burrows–Wheeler transform and its inverse.
//
// Transform sorts all rotations of the input and emits the column of final
// bytes plus the row index of the original string; Inverse rebuilds the
// original via the LF mapping, walking the last column backwards without
// materializing the rotation matrix.
//
// Complexity:
//
//	– Transform: O(n² log n) time (rotation sort with O(n) comparisons), O(n) space
//	– Inverse:   O(n) time and space after an O(n + σ) counting pass
package bwt

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrEmptyInput indicates an empty string was passed to Transform.
	ErrEmptyInput = errors.New("bwt: input must be non-empty")
	// ErrBadPrimaryIndex indicates the primary index lies outside [0, len).
	ErrBadPrimaryIndex = errors.New("bwt: primary index out of range")
)

// Transform returns the Burrows–Wheeler transform of s and the primary
// index (the row of the original string among the sorted rotations), both
// required to invert.
func Transform(s string) (string, int, error) {
	n := len(s)
	if n == 0 {
		return "", 0, ErrEmptyInput
	}

	// Sort rotation start offsets; rotation i is s[i:] + s[:i]. Comparing
	// via the doubled string avoids building each rotation.
	doubled := s + s
	rotations := make([]int, n)
	for i := range rotations {
		rotations[i] = i
	}
	sort.Slice(rotations, func(a, b int) bool {
		return doubled[rotations[a]:rotations[a]+n] < doubled[rotations[b]:rotations[b]+n]
	})

	var b strings.Builder
	b.Grow(n)
	primary := 0
	for row, start := range rotations {
		if start == 0 {
			primary = row
		}
		// Final byte of this rotation.
		b.WriteByte(doubled[start+n-1])
	}

	return b.String(), primary, nil
}

// Inverse reconstructs the original string from its transform and primary
// index.
//
// LF mapping: the i-th occurrence of byte c in the last column corresponds
// to the i-th occurrence of c in the first column (the sorted transform).
// next[row] is therefore the row whose rotation starts one position later,
// and walking it n times from the primary row emits the original string
// front to back.
func Inverse(t string, primary int) (string, error) {
	n := len(t)
	if n == 0 {
		return "", ErrEmptyInput
	}
	if primary < 0 || primary >= n {
		return "", ErrBadPrimaryIndex
	}

	// firstIdx[c] = row where byte c first appears in the sorted column.
	var counts [256]int
	for i := 0; i < n; i++ {
		counts[t[i]]++
	}
	var firstIdx [256]int
	sum := 0
	for c := 0; c < 256; c++ {
		firstIdx[c] = sum
		sum += counts[c]
	}

	next := make([]int, n)
	var seen [256]int
	for i := 0; i < n; i++ {
		c := t[i]
		next[firstIdx[c]+seen[c]] = i
		seen[c]++
	}

	out := make([]byte, n)
	row := next[primary]
	for i := 0; i < n; i++ {
		out[i] = t[row]
		row = next[row]
	}

	return string(out), nil
}
