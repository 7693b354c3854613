package sorting

import (
	"cmp"
	"errors"
)

// ErrNegativeValue is returned by Counting when the input contains a
// negative integer; a frequency histogram cannot index below zero.
var ErrNegativeValue = errors.New("sorting: counting sort requires non-negative values")

// Heap sorts s ascending in place using bottom-up heapify followed by
// repeated extraction of the maximum into the shrinking tail.
func Heap[T cmp.Ordered](s []T) {
	n := len(s)
	// Build a max-heap: sift down every internal node, last parent first.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	// Swap the root (current maximum) behind the heap boundary and restore
	// the heap property on the shortened prefix.
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only s[:n].
func siftDown[T cmp.Ordered](s []T, i, n int) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && s[l] > s[largest] {
			largest = l
		}
		if r < n && s[r] > s[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// Merge returns a new ascending, stably ordered copy of s. The input slice
// is left untouched.
func Merge[T cmp.Ordered](s []T) []T {
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)

		return out
	}
	mid := len(s) / 2
	left := Merge(s[:mid])
	right := Merge(s[mid:])

	out := make([]T, 0, len(s))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// "<=" keeps equal elements in their original order (stability).
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// Quick sorts s ascending in place. Hoare partitioning with the leading
// element as pivot (guarantees the split index lands strictly before the
// end); the smaller partition is recursed first so stack depth stays
// O(log n).
func Quick[T cmp.Ordered](s []T) {
	for len(s) > 1 {
		p := hoarePartition(s)
		if p+1 < len(s)-p-1 {
			Quick(s[:p+1])
			s = s[p+1:]
		} else {
			Quick(s[p+1:])
			s = s[:p+1]
		}
	}
}

func hoarePartition[T cmp.Ordered](s []T) int {
	pivot := s[0]
	i, j := -1, len(s)
	for {
		for {
			i++
			if s[i] >= pivot {
				break
			}
		}
		for {
			j--
			if s[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}

// Insertion sorts s ascending in place. Stable.
func Insertion[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// Gnome sorts s ascending in place with the single-position walk: step back
// after each swap, forward otherwise.
func Gnome[T cmp.Ordered](s []T) {
	i := 0
	for i < len(s) {
		if i == 0 || s[i-1] <= s[i] {
			i++
			continue
		}
		s[i-1], s[i] = s[i], s[i-1]
		i--
	}
}

// Counting sorts non-negative integers by histogram and returns a new
// ascending slice. Returns ErrNegativeValue if any input value is negative.
func Counting(s []int) ([]int, error) {
	if len(s) == 0 {
		return []int{}, nil
	}
	maxV := s[0]
	for _, v := range s {
		if v < 0 {
			return nil, ErrNegativeValue
		}
		if v > maxV {
			maxV = v
		}
	}
	counts := make([]int, maxV+1)
	for _, v := range s {
		counts[v]++
	}
	out := make([]int, 0, len(s))
	for v, c := range counts {
		for ; c > 0; c-- {
			out = append(out, v)
		}
	}

	return out, nil
}

// Radix returns a new ascending copy of s, sorted LSD base-256 on the
// magnitude with a sign-split so negative values order correctly.
func Radix(s []int) []int {
	neg := make([]uint64, 0)
	pos := make([]uint64, 0, len(s))
	for _, v := range s {
		if v < 0 {
			neg = append(neg, uint64(-v))
		} else {
			pos = append(pos, uint64(v))
		}
	}
	radixU64(neg)
	radixU64(pos)

	out := make([]int, 0, len(s))
	// Negatives come out largest-magnitude first.
	for i := len(neg) - 1; i >= 0; i-- {
		out = append(out, -int(neg[i]))
	}
	for _, v := range pos {
		out = append(out, int(v))
	}

	return out
}

// radixU64 sorts u ascending in place, one byte per pass.
func radixU64(u []uint64) {
	if len(u) < 2 {
		return
	}
	buf := make([]uint64, len(u))
	for shift := uint(0); shift < 64; shift += 8 {
		var counts [256]int
		for _, v := range u {
			counts[(v>>shift)&0xFF]++
		}
		// Skip passes where every key shares the same byte.
		if counts[(u[0]>>shift)&0xFF] == len(u) {
			continue
		}
		pos := 0
		for i := range counts {
			c := counts[i]
			counts[i] = pos
			pos += c
		}
		for _, v := range u {
			b := (v >> shift) & 0xFF
			buf[counts[b]] = v
			counts[b]++
		}
		copy(u, buf)
	}
}
