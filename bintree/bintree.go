// Package bintree provides binary-tree exercises over an index-based node
// arena: node i carries Values[i] and child indexes Left[i]/Right[i], with
// -1 meaning "no child". The arena layout makes node ownership explicit
// and lets every operation run on an explicit work list instead of
// language recursion, so tree depth never grows the goroutine stack.
//
// All operations are O(n) time; traversal order outputs are O(n) space.
package bintree

import (
	"errors"
	"fmt"
)

// NoChild marks an absent child link.
const NoChild = -1

var (
	// ErrShapeMismatch indicates Values, Left, and Right differ in length.
	ErrShapeMismatch = errors.New("bintree: values and child slices must align")
	// ErrBadChild indicates a child index outside [0, n) and != NoChild.
	ErrBadChild = errors.New("bintree: child index out of range")
	// ErrBadRoot indicates a root index outside [0, n) for a non-empty tree.
	ErrBadRoot = errors.New("bintree: root index out of range")
)

// Tree is an arena-allocated binary tree. Root is NoChild for the empty
// tree.
type Tree struct {
	Values []int
	Left   []int
	Right  []int
	Root   int
}

// New validates the arena and returns the tree. Child slices may be nil
// when Values is empty.
func New(values, left, right []int, root int) (*Tree, error) {
	n := len(values)
	if len(left) != n || len(right) != n {
		return nil, ErrShapeMismatch
	}
	if n == 0 {
		if root != NoChild {
			return nil, ErrBadRoot
		}

		return &Tree{Root: NoChild}, nil
	}
	if root < 0 || root >= n {
		return nil, ErrBadRoot
	}
	for i := 0; i < n; i++ {
		for _, c := range [2]int{left[i], right[i]} {
			if c != NoChild && (c < 0 || c >= n) {
				return nil, fmt.Errorf("%w: node %d links %d", ErrBadChild, i, c)
			}
		}
	}

	return &Tree{Values: values, Left: left, Right: right, Root: root}, nil
}

// FromLevelOrder builds a tree from a level-order listing where nil
// positions are represented by absent entries: nodes[i] has children at
// 2i+1 and 2i+2 when those indexes exist. A convenience for tests and
// small fixtures.
func FromLevelOrder(values []int) *Tree {
	n := len(values)
	t := &Tree{
		Values: values,
		Left:   make([]int, n),
		Right:  make([]int, n),
		Root:   NoChild,
	}
	if n > 0 {
		t.Root = 0
	}
	for i := 0; i < n; i++ {
		t.Left[i], t.Right[i] = NoChild, NoChild
		if l := 2*i + 1; l < n {
			t.Left[i] = l
		}
		if r := 2*i + 2; r < n {
			t.Right[i] = r
		}
	}

	return t
}

// Invert swaps the left and right children of every node, in place.
// A simple work list of node indexes; no recursion.
func (t *Tree) Invert() {
	if t.Root == NoChild {
		return
	}
	work := []int{t.Root}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		t.Left[i], t.Right[i] = t.Right[i], t.Left[i]
		if t.Left[i] != NoChild {
			work = append(work, t.Left[i])
		}
		if t.Right[i] != NoChild {
			work = append(work, t.Right[i])
		}
	}
}

// HasPathSum reports whether some root-to-leaf path sums to target.
// The work list carries (node, remaining) pairs.
func (t *Tree) HasPathSum(target int) bool {
	if t.Root == NoChild {
		return false
	}
	type item struct {
		node, remaining int
	}
	work := []item{{t.Root, target - t.Values[t.Root]}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		l, r := t.Left[it.node], t.Right[it.node]
		if l == NoChild && r == NoChild {
			if it.remaining == 0 {
				return true
			}
			continue
		}
		if l != NoChild {
			work = append(work, item{l, it.remaining - t.Values[l]})
		}
		if r != NoChild {
			work = append(work, item{r, it.remaining - t.Values[r]})
		}
	}

	return false
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path;
// 0 for the empty tree.
func (t *Tree) MaxDepth() int {
	if t.Root == NoChild {
		return 0
	}
	type item struct {
		node, depth int
	}
	best := 0
	work := []item{{t.Root, 1}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		if it.depth > best {
			best = it.depth
		}
		if l := t.Left[it.node]; l != NoChild {
			work = append(work, item{l, it.depth + 1})
		}
		if r := t.Right[it.node]; r != NoChild {
			work = append(work, item{r, it.depth + 1})
		}
	}

	return best
}

// InOrder returns the values in left-root-right order via an explicit
// descend-then-pop stack.
func (t *Tree) InOrder() []int {
	var out []int
	var stack []int
	cur := t.Root
	for cur != NoChild || len(stack) > 0 {
		for cur != NoChild {
			stack = append(stack, cur)
			cur = t.Left[cur]
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.Values[cur])
		cur = t.Right[cur]
	}

	return out
}

// PreOrder returns the values in root-left-right order.
func (t *Tree) PreOrder() []int {
	if t.Root == NoChild {
		return nil
	}
	var out []int
	stack := []int{t.Root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.Values[i])
		// Right first so left pops first.
		if r := t.Right[i]; r != NoChild {
			stack = append(stack, r)
		}
		if l := t.Left[i]; l != NoChild {
			stack = append(stack, l)
		}
	}

	return out
}

// PostOrder returns the values in left-right-root order (reverse of the
// root-right-left preorder).
func (t *Tree) PostOrder() []int {
	if t.Root == NoChild {
		return nil
	}
	var rev []int
	stack := []int{t.Root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rev = append(rev, t.Values[i])
		if l := t.Left[i]; l != NoChild {
			stack = append(stack, l)
		}
		if r := t.Right[i]; r != NoChild {
			stack = append(stack, r)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
