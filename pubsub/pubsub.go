// Package pubsub provides an in-process topic-based publish/subscribe bus.
//
// Each subscription owns an unbounded FIFO buffer: Publish appends to
// every subscriber of the topic and never blocks the publisher; a
// subscriber drains its buffer with Next or TryNext in strict publication
// order. There is no cross-process delivery and no retry policy — failure
// surfaces as a boolean or a sentinel error to the immediate caller.
package pubsub

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrClosed is returned by operations on a closed bus or subscription.
	ErrClosed = errors.New("pubsub: closed")
	// ErrEmptyTopic is returned by Subscribe and Publish for "".
	ErrEmptyTopic = errors.New("pubsub: topic must be non-empty")
)

// Option configures a Bus.
type Option func(*Bus)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.log = l
		}
	}
}

// Bus routes published messages to topic subscribers.
type Bus struct {
	mu     sync.Mutex
	topics map[string]map[*Subscription]struct{}
	closed bool
	log    *zap.Logger
}

// Subscription receives messages for one topic.
type Subscription struct {
	bus    *Bus
	topic  string
	mu     sync.Mutex
	buf    []any
	wake   chan struct{} // 1-buffered wakeup signal
	closed bool
}

// New returns an open Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		topics: make(map[string]map[*Subscription]struct{}),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe registers a new subscription on topic.
func (b *Bus) Subscribe(topic string) (*Subscription, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}
	s := &Subscription{
		bus:   b,
		topic: topic,
		wake:  make(chan struct{}, 1),
	}
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*Subscription]struct{})
	}
	b.topics[topic][s] = struct{}{}
	b.log.Debug("subscribed", zap.String("topic", topic))

	return s, nil
}

// Publish delivers msg to every current subscriber of topic and returns
// how many received it.
func (b *Bus) Publish(topic string, msg any) (int, error) {
	if topic == "" {
		return 0, ErrEmptyTopic
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return 0, ErrClosed
	}
	subs := make([]*Subscription, 0, len(b.topics[topic]))
	for s := range b.topics[topic] {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	delivered := 0
	for _, s := range subs {
		if s.enqueue(msg) {
			delivered++
		}
	}
	b.log.Debug("published",
		zap.String("topic", topic),
		zap.Int("delivered", delivered))

	return delivered, nil
}

// Unsubscribe removes s from the bus, reporting whether it was still
// registered. The subscription's buffered messages remain drainable.
func (b *Bus) Unsubscribe(s *Subscription) bool {
	if s == nil || s.bus != b {
		return false
	}
	b.mu.Lock()
	subs, ok := b.topics[s.topic]
	if ok {
		_, ok = subs[s]
		delete(subs, s)
		if len(subs) == 0 {
			delete(b.topics, s.topic)
		}
	}
	b.mu.Unlock()
	if ok {
		s.close()
	}

	return ok
}

// Close shuts the bus down and closes every subscription.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return
	}
	b.closed = true
	var all []*Subscription
	for _, subs := range b.topics {
		for s := range subs {
			all = append(all, s)
		}
	}
	b.topics = make(map[string]map[*Subscription]struct{})
	b.mu.Unlock()

	for _, s := range all {
		s.close()
	}
	b.log.Debug("bus closed", zap.Int("subscriptions", len(all)))
}

// Topic returns the topic this subscription listens on.
func (s *Subscription) Topic() string { return s.topic }

// enqueue appends msg, reporting false if the subscription is closed.
func (s *Subscription) enqueue(msg any) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return false
	}
	s.buf = append(s.buf, msg)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}

	return true
}

func (s *Subscription) close() {
	s.mu.Lock()
	already := s.closed
	s.closed = true
	s.mu.Unlock()
	if !already {
		// Wake any blocked Next so it can observe the closed state.
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// TryNext pops the oldest buffered message without blocking.
func (s *Subscription) TryNext() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return nil, false
	}
	msg := s.buf[0]
	s.buf = s.buf[1:]

	return msg, true
}

// Next pops the oldest buffered message, waiting until one arrives, the
// subscription closes, or ctx is done. A closed subscription still drains
// its remaining buffer before returning ErrClosed.
func (s *Subscription) Next(ctx context.Context) (any, error) {
	for {
		s.mu.Lock()
		if len(s.buf) > 0 {
			msg := s.buf[0]
			s.buf = s.buf[1:]
			s.mu.Unlock()

			return msg, nil
		}
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return nil, ErrClosed
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.wake:
		}
	}
}
