// Package sorting provides canonical comparison and integer sorts plus
// binary-search helpers over plain slices.
//
// All comparison sorts order elements ascending by cmp.Ordered and are
// in-place unless documented otherwise. None of them allocate beyond what
// the algorithm inherently requires (Merge allocates the output, Counting
// allocates the histogram).
//
// Complexity:
//
//	– Heap:      O(n log n) time, O(1) extra space
//	– Merge:     O(n log n) time, O(n) extra space, stable
//	– Quick:     O(n log n) average, O(n²) worst, in-place
//	– Insertion: O(n²) time, O(1) space, stable; fast on nearly-sorted input
//	– Gnome:     O(n²) time, O(1) space; the one-loop curiosity
//	– Counting:  O(n + k) time/space, k = value range; non-negative ints only
//	– Radix:     O(d·(n + b)) time, LSD base-256 over int magnitudes
//
// Search helpers (BinarySearch, LowerBound, UpperBound) require their input
// to already be in ascending order; BinarySearch returns -1 when the target
// is absent.
package sorting
