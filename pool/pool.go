// Package pool provides a generic bounded resource pool with a real
// lifecycle: resources are created by a caller-supplied factory, reused
// FIFO while idle, and destroyed by a caller-supplied closer on eviction
// and shutdown.
//
// Capacity is enforced with a weighted semaphore, so Acquire blocks (via
// context) when every slot is busy. Counters in Stats are exact — created,
// reused, in-use, idle — not synthetic health numbers.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrBadCapacity is returned by New when maxSize is not positive.
	ErrBadCapacity = errors.New("pool: max size must be positive")
	// ErrNilFactory is returned by New when the factory is nil.
	ErrNilFactory = errors.New("pool: factory must be non-nil")
	// ErrClosed is returned by Acquire after Close.
	ErrClosed = errors.New("pool: closed")
	// ErrForeignResource is returned when releasing a resource the pool
	// did not hand out, or one released twice.
	ErrForeignResource = errors.New("pool: resource not held by this pool")
)

// Factory creates a new pooled value.
type Factory[T any] func(ctx context.Context) (T, error)

// Closer destroys a pooled value; nil means values need no teardown.
type Closer[T any] func(v T)

// Resource is one checked-out value.
type Resource[T any] struct {
	// Value is the pooled value itself.
	Value T
	id    string
}

// ID returns the resource's unique identity, stable across reuse.
func (r *Resource[T]) ID() string { return r.id }

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	// InUse is the number of checked-out resources.
	InUse int
	// Idle is the number of resources parked for reuse.
	Idle int
	// Created counts factory invocations.
	Created uint64
	// Reused counts acquisitions served from the idle list.
	Reused uint64
	// Destroyed counts closer invocations.
	Destroyed uint64
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Pool manages up to maxSize concurrently checked-out values of type T.
type Pool[T any] struct {
	factory Factory[T]
	closer  Closer[T]
	sem     *semaphore.Weighted
	log     *zap.Logger

	mu        sync.Mutex
	idle      []*Resource[T] // FIFO: index 0 is the oldest
	out       map[string]*Resource[T]
	closed    bool
	created   uint64
	reused    uint64
	destroyed uint64
}

// New returns a Pool bounded to maxSize concurrent resources.
func New[T any](maxSize int, factory Factory[T], closer Closer[T], opts ...Option) (*Pool[T], error) {
	if maxSize <= 0 {
		return nil, ErrBadCapacity
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Pool[T]{
		factory: factory,
		closer:  closer,
		sem:     semaphore.NewWeighted(int64(maxSize)),
		log:     o.log,
		out:     make(map[string]*Resource[T]),
	}, nil
}

// Acquire checks out a resource, reusing the oldest idle one or invoking
// the factory. It blocks while the pool is at capacity until a slot frees
// or ctx is done. Factory errors release the slot and propagate wrapped.
func (p *Pool[T]) Acquire(ctx context.Context) (*Resource[T], error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.sem.Release(1)

		return nil, ErrClosed
	}
	if len(p.idle) > 0 {
		r := p.idle[0]
		p.idle = p.idle[1:]
		p.reused++
		p.out[r.id] = r
		p.mu.Unlock()
		p.log.Debug("resource reused", zap.String("resource", r.id))

		return r, nil
	}
	p.mu.Unlock()

	v, err := p.factory(ctx)
	if err != nil {
		p.sem.Release(1)

		return nil, fmt.Errorf("pool: factory: %w", err)
	}
	r := &Resource[T]{Value: v, id: uuid.NewString()}
	p.mu.Lock()
	p.created++
	p.out[r.id] = r
	p.mu.Unlock()
	p.log.Debug("resource created", zap.String("resource", r.id))

	return r, nil
}

// Release returns r to the idle list (or destroys it if the pool closed
// meanwhile) and frees its capacity slot.
func (p *Pool[T]) Release(r *Resource[T]) error {
	if r == nil {
		return ErrForeignResource
	}
	p.mu.Lock()
	if _, held := p.out[r.id]; !held {
		p.mu.Unlock()

		return ErrForeignResource
	}
	delete(p.out, r.id)
	if p.closed {
		p.destroyed++
		p.mu.Unlock()
		p.destroy(r)
	} else {
		p.idle = append(p.idle, r)
		p.mu.Unlock()
	}
	p.sem.Release(1)

	return nil
}

// Close shuts the pool down: idle resources are destroyed immediately,
// outstanding ones on their Release. Acquire fails afterwards. Close is
// idempotent.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.destroyed += uint64(len(idle))
	p.mu.Unlock()

	for _, r := range idle {
		p.destroy(r)
	}
	p.log.Debug("pool closed", zap.Int("destroyed_idle", len(idle)))
}

func (p *Pool[T]) destroy(r *Resource[T]) {
	if p.closer != nil {
		p.closer(r.Value)
	}
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		InUse:     len(p.out),
		Idle:      len(p.idle),
		Created:   p.created,
		Reused:    p.reused,
		Destroyed: p.destroyed,
	}
}
