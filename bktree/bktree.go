// Package bktree provides a Burkhard–Keller tree for approximate string
// matching under a discrete metric.
//
// A BK-tree exploits the triangle inequality: if d(query, node) = d, any
// word within radius r of the query must lie at distance in [d-r, d+r]
// from the node, so only those child branches are explored. Search cost
// degrades gracefully with radius; exact lookups (radius 0) touch a single
// path.
//
// Nodes are stored in a flat slice with index-based child references; the
// search walks an explicit stack.
package bktree

import (
	"errors"
	"sort"

	"github.com/shadowfit1980/shadow-ai-sub020/strdist"
)

var (
	// ErrNilMetric indicates New was called with a nil metric.
	ErrNilMetric = errors.New("bktree: metric must be non-nil")
	// ErrNegativeRadius indicates Search was called with radius < 0.
	ErrNegativeRadius = errors.New("bktree: radius must be non-negative")
)

// Metric is a discrete distance between two strings. It must satisfy the
// metric axioms (identity, symmetry, triangle inequality) for Search to be
// exact.
type Metric func(a, b string) int

// Match is a search hit with its distance from the query.
type Match struct {
	Word     string
	Distance int
}

// entry is a tree node; children maps distance-from-this-node to the child
// node index.
type entry struct {
	word     string
	children map[int]int
}

// Tree is a BK-tree over strings.
type Tree struct {
	metric Metric
	nodes  []entry
}

// New returns an empty tree using the given metric.
func New(metric Metric) (*Tree, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}

	return &Tree{metric: metric}, nil
}

// NewLevenshtein returns an empty tree over edit distance.
func NewLevenshtein() *Tree {
	t, _ := New(strdist.Levenshtein)

	return t
}

// Len returns the number of stored words.
func (t *Tree) Len() int { return len(t.nodes) }

// Add inserts word, reporting whether it was newly added (duplicates are
// detected by zero distance to an existing node).
func (t *Tree) Add(word string) bool {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, entry{word: word, children: make(map[int]int)})

		return true
	}
	i := 0
	for {
		d := t.metric(word, t.nodes[i].word)
		if d == 0 {
			return false
		}
		child, ok := t.nodes[i].children[d]
		if !ok {
			t.nodes = append(t.nodes, entry{word: word, children: make(map[int]int)})
			t.nodes[i].children[d] = len(t.nodes) - 1

			return true
		}
		i = child
	}
}

// Search returns every stored word within radius of query, ordered by
// ascending distance then lexicographically.
func (t *Tree) Search(query string, radius int) ([]Match, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	if len(t.nodes) == 0 {
		return nil, nil
	}

	var matches []Match
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := t.metric(query, t.nodes[i].word)
		if d <= radius {
			matches = append(matches, Match{Word: t.nodes[i].word, Distance: d})
		}
		// Triangle inequality: only children keyed in [d-radius, d+radius]
		// can hold hits.
		for dist, child := range t.nodes[i].children {
			if dist >= d-radius && dist <= d+radius {
				stack = append(stack, child)
			}
		}
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Distance != matches[b].Distance {
			return matches[a].Distance < matches[b].Distance
		}

		return matches[a].Word < matches[b].Word
	})

	return matches, nil
}
