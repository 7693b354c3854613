// Package segtree provides a generic segment tree for associative range
// queries (sum, min, max, gcd, ...) with point updates.
//
// The tree is built from a slice and a combine function that must be
// associative; identity is the neutral element of combine (0 for sum,
// +inf for min). Both Query and Update run in O(log n); construction is
// O(n). Not safe for concurrent use.
//
// Errors (sentinel):
//
//	– ErrEmptyData if New is given an empty slice.
//	– ErrNilCombine if New is given a nil combine function.
//	– ErrIndexRange if Update or Query is given indexes outside [0, n).
package segtree

import "errors"

var (
	// ErrEmptyData indicates New was called with no elements.
	ErrEmptyData = errors.New("segtree: data must be non-empty")
	// ErrNilCombine indicates New was called with a nil combine function.
	ErrNilCombine = errors.New("segtree: combine function must be non-nil")
	// ErrIndexRange indicates an index or range outside [0, Len).
	ErrIndexRange = errors.New("segtree: index out of range")
)

// CombineFunc merges two segment aggregates; it must be associative.
type CombineFunc[T any] func(a, b T) T

// Tree answers combine-aggregated queries over contiguous ranges of the
// original slice. Nodes live in a flat array: node i has children 2i+1 and
// 2i+2, leaves carry the original elements.
type Tree[T any] struct {
	n        int
	nodes    []T
	combine  CombineFunc[T]
	identity T
}

// New builds a segment tree over a copy of data.
func New[T any](data []T, combine CombineFunc[T], identity T) (*Tree[T], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if combine == nil {
		return nil, ErrNilCombine
	}
	t := &Tree[T]{
		n:        len(data),
		nodes:    make([]T, 4*len(data)),
		combine:  combine,
		identity: identity,
	}
	t.build(0, 0, t.n-1, data)

	return t, nil
}

// build fills the subtree for data[lo..hi] rooted at node, bottom-up via an
// explicit post-order; recursion is avoided so deep trees cannot grow the
// goroutine stack.
func (t *Tree[T]) build(node, lo, hi int, data []T) {
	type frame struct {
		node, lo, hi int
		expanded     bool
	}
	stack := []frame{{node, lo, hi, false}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.lo == f.hi {
			t.nodes[f.node] = data[f.lo]
			continue
		}
		mid := f.lo + (f.hi-f.lo)/2
		if f.expanded {
			// Children are done; merge them.
			t.nodes[f.node] = t.combine(t.nodes[2*f.node+1], t.nodes[2*f.node+2])
			continue
		}
		stack = append(stack, frame{f.node, f.lo, f.hi, true})
		stack = append(stack, frame{2*f.node + 2, mid + 1, f.hi, false})
		stack = append(stack, frame{2*f.node + 1, f.lo, mid, false})
	}
}

// Len returns the number of underlying elements.
func (t *Tree[T]) Len() int { return t.n }

// Update replaces element i with v and refreshes the aggregates along the
// root path.
func (t *Tree[T]) Update(i int, v T) error {
	if i < 0 || i >= t.n {
		return ErrIndexRange
	}
	node, lo, hi := 0, 0, t.n-1
	// Descend to the leaf, remembering the path.
	path := make([]int, 0, 32)
	for lo != hi {
		path = append(path, node)
		mid := lo + (hi-lo)/2
		if i <= mid {
			node, hi = 2*node+1, mid
		} else {
			node, lo = 2*node+2, mid+1
		}
	}
	t.nodes[node] = v
	// Recombine ancestors leaf-to-root.
	for j := len(path) - 1; j >= 0; j-- {
		p := path[j]
		t.nodes[p] = t.combine(t.nodes[2*p+1], t.nodes[2*p+2])
	}

	return nil
}

// Query returns the combine-aggregate of elements l..r inclusive.
func (t *Tree[T]) Query(l, r int) (T, error) {
	var zero T
	if l < 0 || r >= t.n || l > r {
		return zero, ErrIndexRange
	}
	type frame struct{ node, lo, hi int }
	acc := t.identity
	stack := []frame{{0, 0, t.n - 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r < f.lo || f.hi < l {
			continue // disjoint
		}
		if l <= f.lo && f.hi <= r {
			acc = t.combine(acc, t.nodes[f.node])
			continue // fully covered
		}
		mid := f.lo + (f.hi-f.lo)/2
		// Right child pushed first so the left is combined first; combine
		// need not be commutative.
		stack = append(stack, frame{2*f.node + 2, mid + 1, f.hi})
		stack = append(stack, frame{2*f.node + 1, f.lo, mid})
	}

	return acc, nil
}
