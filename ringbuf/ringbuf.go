// Package ringbuf provides a generic fixed-capacity FIFO ring buffer.
//
// By default Push reports false when the buffer is full; with
// WithOverwrite, Push evicts the oldest element instead. Reads always come
// out in insertion order.
//
// All operations are O(1); Snapshot is O(n). Not safe for concurrent use.
package ringbuf

import "errors"

// ErrBadCapacity is returned by New when capacity is not positive.
var ErrBadCapacity = errors.New("ringbuf: capacity must be positive")

// Option configures a Ring.
type Option func(*config)

type config struct {
	overwrite bool
}

// WithOverwrite makes Push on a full buffer evict the oldest element
// instead of failing.
func WithOverwrite() Option {
	return func(c *config) {
		c.overwrite = true
	}
}

// Ring is a fixed-capacity circular FIFO buffer.
type Ring[T any] struct {
	buf       []T
	head      int // index of the oldest element
	size      int
	overwrite bool
}

// New returns a Ring with the given capacity.
func New[T any](capacity int, opts ...Option) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Ring[T]{
		buf:       make([]T, capacity),
		overwrite: c.overwrite,
	}, nil
}

// Push appends v. On a full buffer it evicts the oldest element when
// overwrite is enabled, otherwise it leaves the buffer unchanged and
// reports false.
func (r *Ring[T]) Push(v T) bool {
	if r.size == len(r.buf) {
		if !r.overwrite {
			return false
		}
		// Overwrite the oldest slot and advance the head.
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)

		return true
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++

	return true
}

// Pop removes and returns the oldest element.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero // release the reference for GC
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v, true
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.size == 0 {
		var zero T

		return zero, false
	}

	return r.buf[r.head], true
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Snapshot returns the buffered elements oldest-first without consuming
// them.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}

	return out
}
