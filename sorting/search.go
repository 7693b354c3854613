package sorting

import "cmp"

// BinarySearch returns the index of target in the ascending slice s, or -1
// if target is absent. When duplicates exist, any matching index may be
// returned.
func BinarySearch[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// LowerBound returns the smallest index i such that s[i] >= target, or
// len(s) if no such index exists. s must be ascending.
func LowerBound[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// UpperBound returns the smallest index i such that s[i] > target, or
// len(s) if no such index exists. s must be ascending.
func UpperBound[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
