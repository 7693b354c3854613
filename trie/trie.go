// Package trie provides a byte-wise prefix tree over strings.
//
// Insert, Contains, HasPrefix, and Delete are O(len(word)); WalkPrefix
// visits every stored word under a prefix in lexicographic byte order.
// Deletion prunes branches that no longer lead to a word, using an explicit
// parent stack rather than recursion. Not safe for concurrent use.
package trie

import "sort"

type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie stores a set of strings by shared prefixes.
type Trie struct {
	root *node
	size int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.size }

// Insert adds word to the set, reporting whether it was newly added.
// The empty string is a valid word.
func (t *Trie) Insert(word string) bool {
	n := t.root
	for i := 0; i < len(word); i++ {
		child, ok := n.children[word[i]]
		if !ok {
			child = newNode()
			n.children[word[i]] = child
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	t.size++

	return true
}

// Contains reports whether word was inserted (prefix matches don't count).
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)

	return n != nil && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// walk descends to the node for s, or nil if the path is absent.
func (t *Trie) walk(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		child, ok := n.children[s[i]]
		if !ok {
			return nil
		}
		n = child
	}

	return n
}

// Delete removes word from the set, reporting whether it was present.
// Nodes left without descendants leading to a word are pruned.
func (t *Trie) Delete(word string) bool {
	// Record the path so pruning can walk back up without recursion.
	type step struct {
		parent *node
		b      byte
	}
	path := make([]step, 0, len(word))
	n := t.root
	for i := 0; i < len(word); i++ {
		child, ok := n.children[word[i]]
		if !ok {
			return false
		}
		path = append(path, step{n, word[i]})
		n = child
	}
	if !n.terminal {
		return false
	}
	n.terminal = false
	t.size--

	// Prune upward while the node holds no word and no children.
	for i := len(path) - 1; i >= 0; i-- {
		if n.terminal || len(n.children) > 0 {
			break
		}
		delete(path[i].parent.children, path[i].b)
		n = path[i].parent
	}

	return true
}

// WalkPrefix calls fn for every stored word beginning with prefix, in
// lexicographic byte order. Returning false from fn stops the walk.
func (t *Trie) WalkPrefix(prefix string, fn func(word string) bool) {
	start := t.walk(prefix)
	if start == nil {
		return
	}

	// Depth-first with an explicit stack; children pushed in reverse byte
	// order so the smallest byte pops first.
	type frame struct {
		n    *node
		word string
	}
	stack := []frame{{start, prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.terminal {
			if !fn(f.word) {
				return
			}
		}
		bytes := make([]byte, 0, len(f.n.children))
		for b := range f.n.children {
			bytes = append(bytes, b)
		}
		sort.Slice(bytes, func(i, j int) bool { return bytes[i] > bytes[j] })
		for _, b := range bytes {
			stack = append(stack, frame{f.n.children[b], f.word + string(b)})
		}
	}
}

// Words returns every stored word with the given prefix, in lexicographic
// byte order. Words("") lists the whole set.
func (t *Trie) Words(prefix string) []string {
	var out []string
	t.WalkPrefix(prefix, func(w string) bool {
		out = append(out, w)

		return true
	})

	return out
}
