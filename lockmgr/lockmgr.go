// Package lockmgr provides a manager of named in-process locks with strict
// FIFO grant order per name.
//
// Acquire blocks (via context) until the lock is granted or ctx is done;
// waiters for a name are served strictly in arrival order. A grant is
// represented by an opaque Token; Release takes the token back, so only
// the holder can unlock and releasing an unknown or stale token is a
// detectable no-op rather than silent corruption.
//
// Stats exposes deterministic counters — grants, releases, waiter depth —
// never synthetic "strength" values.
package lockmgr

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyName is returned by Acquire and TryAcquire for "".
var ErrEmptyName = errors.New("lockmgr: lock name must be non-empty")

// Token proves ownership of one lock grant.
type Token struct {
	id   string
	name string
}

// Name returns the lock name the token holds.
func (t Token) Name() string { return t.name }

// ID returns the unique grant identifier.
func (t Token) ID() string { return t.id }

// Stats is a point-in-time snapshot of manager counters.
type Stats struct {
	// Held is the number of currently held locks.
	Held int
	// Waiting is the number of goroutines queued across all names.
	Waiting int
	// Grants counts successful Acquire and TryAcquire calls.
	Grants uint64
	// Releases counts successful Release calls.
	Releases uint64
}

// waiter is one queued Acquire; grant is closed with the token filled in.
type waiter struct {
	grant chan Token
}

// lockState tracks one named lock.
type lockState struct {
	holder string // token ID, "" when free
	queue  []*waiter
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// Manager coordinates named locks.
type Manager struct {
	mu       sync.Mutex
	locks    map[string]*lockState
	grants   uint64
	releases uint64
	log      *zap.Logger
}

// New returns a Manager with no locks held.
func New(opts ...Option) *Manager {
	m := &Manager{
		locks: make(map[string]*lockState),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// TryAcquire grants the named lock immediately if it is free and nobody is
// queued ahead.
func (m *Manager) TryAcquire(name string) (Token, bool) {
	if name == "" {
		return Token{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.locks[name]
	if st == nil {
		st = &lockState{}
		m.locks[name] = st
	}
	if st.holder != "" || len(st.queue) > 0 {
		return Token{}, false
	}
	tok := Token{id: uuid.NewString(), name: name}
	st.holder = tok.id
	m.grants++
	m.log.Debug("lock granted", zap.String("lock", name), zap.String("token", tok.id))

	return tok, true
}

// Acquire grants the named lock, queueing FIFO behind current waiters. It
// returns ctx.Err() if ctx is done first; a cancelled waiter loses its
// queue slot.
func (m *Manager) Acquire(ctx context.Context, name string) (Token, error) {
	if name == "" {
		return Token{}, ErrEmptyName
	}

	m.mu.Lock()
	st := m.locks[name]
	if st == nil {
		st = &lockState{}
		m.locks[name] = st
	}
	if st.holder == "" && len(st.queue) == 0 {
		tok := Token{id: uuid.NewString(), name: name}
		st.holder = tok.id
		m.grants++
		m.mu.Unlock()
		m.log.Debug("lock granted", zap.String("lock", name), zap.String("token", tok.id))

		return tok, nil
	}
	w := &waiter{grant: make(chan Token, 1)}
	st.queue = append(st.queue, w)
	m.mu.Unlock()

	select {
	case tok := <-w.grant:
		return tok, nil
	case <-ctx.Done():
		m.mu.Lock()
		// Either remove ourselves from the queue, or, if the grant raced
		// the cancellation, pass the lock straight to the next waiter.
		select {
		case tok := <-w.grant:
			m.releaseLocked(tok)
		default:
			for i, q := range st.queue {
				if q == w {
					st.queue = append(st.queue[:i], st.queue[i+1:]...)

					break
				}
			}
		}
		m.mu.Unlock()

		return Token{}, ctx.Err()
	}
}

// Release returns the lock held by tok, granting it to the next queued
// waiter. It reports false for unknown, stale, or foreign tokens.
func (m *Manager) Release(tok Token) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.releaseLocked(tok)
}

// releaseLocked requires m.mu.
func (m *Manager) releaseLocked(tok Token) bool {
	st := m.locks[tok.name]
	if st == nil || st.holder == "" || st.holder != tok.id {
		return false
	}
	m.releases++
	if len(st.queue) == 0 {
		st.holder = ""
		delete(m.locks, tok.name)
		m.log.Debug("lock released", zap.String("lock", tok.name))

		return true
	}
	next := st.queue[0]
	st.queue = st.queue[1:]
	granted := Token{id: uuid.NewString(), name: tok.name}
	st.holder = granted.id
	m.grants++
	next.grant <- granted
	m.log.Debug("lock handed off", zap.String("lock", tok.name), zap.String("token", granted.id))

	return true
}

// Stats returns a snapshot of the manager's counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Stats{Grants: m.grants, Releases: m.releases}
	for _, st := range m.locks {
		if st.holder != "" {
			s.Held++
		}
		s.Waiting += len(st.queue)
	}

	return s
}
