// Package bimap provides a generic bidirectional map with a strict
// one-to-one invariant: no key and no value ever appears in more than one
// binding. Inserting a binding whose key or value is already present evicts
// the prior binding on both sides first.
//
// All operations are O(1) expected. The zero value is not usable; construct
// with New.
package bimap

// Bimap maintains forward (key→value) and inverse (value→key) indexes that
// are kept in lockstep.
type Bimap[K, V comparable] struct {
	forward map[K]V
	inverse map[V]K
}

// New returns an empty Bimap.
func New[K, V comparable]() *Bimap[K, V] {
	return &Bimap[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V]K),
	}
}

// Set binds k to v. Any existing binding involving k or v is evicted so the
// one-to-one invariant holds afterwards.
func (b *Bimap[K, V]) Set(k K, v V) {
	if oldV, ok := b.forward[k]; ok {
		delete(b.inverse, oldV)
	}
	if oldK, ok := b.inverse[v]; ok {
		delete(b.forward, oldK)
	}
	b.forward[k] = v
	b.inverse[v] = k
}

// GetByKey returns the value bound to k.
func (b *Bimap[K, V]) GetByKey(k K) (V, bool) {
	v, ok := b.forward[k]

	return v, ok
}

// GetByValue returns the key bound to v.
func (b *Bimap[K, V]) GetByValue(v V) (K, bool) {
	k, ok := b.inverse[v]

	return k, ok
}

// DeleteByKey removes the binding for k, reporting whether one existed.
func (b *Bimap[K, V]) DeleteByKey(k K) bool {
	v, ok := b.forward[k]
	if !ok {
		return false
	}
	delete(b.forward, k)
	delete(b.inverse, v)

	return true
}

// DeleteByValue removes the binding for v, reporting whether one existed.
func (b *Bimap[K, V]) DeleteByValue(v V) bool {
	k, ok := b.inverse[v]
	if !ok {
		return false
	}
	delete(b.inverse, v)
	delete(b.forward, k)

	return true
}

// Len returns the number of bindings.
func (b *Bimap[K, V]) Len() int {
	return len(b.forward)
}
