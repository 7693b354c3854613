// Package skiplist provides an ordered map backed by a probabilistic skip
// list.
//
// Set, Get, and Delete run in O(log n) expected time; Min and Max are
// O(log n) and O(1)-ish walks; Range streams entries in ascending key
// order. Tower heights are drawn with p = 1/2 up to a fixed maximum, so no
// rebalancing is ever needed. Not safe for concurrent use.
package skiplist

import (
	"cmp"
	"math/rand/v2"
)

// maxLevel bounds tower height; 2^32 expected elements is plenty.
const maxLevel = 32

type node[K cmp.Ordered, V any] struct {
	key  K
	val  V
	next []*node[K, V]
}

// List is an ordered key-value map.
type List[K cmp.Ordered, V any] struct {
	head  *node[K, V] // sentinel, full height, holds no entry
	level int         // highest level currently in use
	size  int
	rng   *rand.Rand
}

// New returns an empty List.
func New[K cmp.Ordered, V any]() *List[K, V] {
	return &List[K, V]{
		head:  &node[K, V]{next: make([]*node[K, V], maxLevel)},
		level: 1,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// randomLevel draws a tower height: level L with probability 2^-L.
func (l *List[K, V]) randomLevel() int {
	level := 1
	for level < maxLevel && l.rng.Uint64()&1 == 0 {
		level++
	}

	return level
}

// findPredecessors fills update with the rightmost node before key at every
// level and returns the candidate node at level 0 (which may equal key).
func (l *List[K, V]) findPredecessors(key K, update []*node[K, V]) *node[K, V] {
	n := l.head
	for lv := l.level - 1; lv >= 0; lv-- {
		for n.next[lv] != nil && n.next[lv].key < key {
			n = n.next[lv]
		}
		if update != nil {
			update[lv] = n
		}
	}

	return n.next[0]
}

// Set inserts or replaces the value for key, reporting whether the key was
// newly inserted.
func (l *List[K, V]) Set(key K, val V) bool {
	update := make([]*node[K, V], maxLevel)
	for i := range update {
		update[i] = l.head
	}
	candidate := l.findPredecessors(key, update)
	if candidate != nil && candidate.key == key {
		candidate.val = val

		return false
	}

	lv := l.randomLevel()
	if lv > l.level {
		l.level = lv
	}
	n := &node[K, V]{key: key, val: val, next: make([]*node[K, V], lv)}
	for i := 0; i < lv; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}
	l.size++

	return true
}

// Get returns the value stored for key.
func (l *List[K, V]) Get(key K) (V, bool) {
	n := l.findPredecessors(key, nil)
	if n != nil && n.key == key {
		return n.val, true
	}
	var zero V

	return zero, false
}

// Delete removes key, reporting whether it was present.
func (l *List[K, V]) Delete(key K) bool {
	update := make([]*node[K, V], maxLevel)
	for i := range update {
		update[i] = l.head
	}
	n := l.findPredecessors(key, update)
	if n == nil || n.key != key {
		return false
	}
	for i := 0; i < len(n.next); i++ {
		if update[i].next[i] == n {
			update[i].next[i] = n.next[i]
		}
	}
	// Shrink the active level while its list is empty.
	for l.level > 1 && l.head.next[l.level-1] == nil {
		l.level--
	}
	l.size--

	return true
}

// Len returns the number of entries.
func (l *List[K, V]) Len() int { return l.size }

// Min returns the smallest key and its value.
func (l *List[K, V]) Min() (K, V, bool) {
	if n := l.head.next[0]; n != nil {
		return n.key, n.val, true
	}
	var k K
	var v V

	return k, v, false
}

// Max returns the largest key and its value.
func (l *List[K, V]) Max() (K, V, bool) {
	var k K
	var v V
	if l.size == 0 {
		return k, v, false
	}
	n := l.head
	for lv := l.level - 1; lv >= 0; lv-- {
		for n.next[lv] != nil {
			n = n.next[lv]
		}
	}

	return n.key, n.val, true
}

// Range calls fn for every entry with from <= key <= to in ascending key
// order. Returning false stops the walk.
func (l *List[K, V]) Range(from, to K, fn func(key K, val V) bool) {
	n := l.findPredecessors(from, nil)
	for n != nil && n.key <= to {
		if !fn(n.key, n.val) {
			return
		}
		n = n.next[0]
	}
}
