// Package cmdbus provides an in-process command bus: named handlers,
// a middleware chain, and context-aware dispatch.
//
// Registration binds exactly one handler per command name. Dispatch wraps
// the handler in the registered middleware (outermost first, a
// chain-of-responsibility), tags the invocation with a UUID for log
// correlation, and returns the handler's result and error unchanged.
// Unknown commands fail fast with ErrUnknownCommand.
package cmdbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyName is returned when registering or dispatching "".
	ErrEmptyName = errors.New("cmdbus: command name must be non-empty")
	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("cmdbus: handler must be non-nil")
	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("cmdbus: command already registered")
	// ErrUnknownCommand is returned by Dispatch for unregistered names.
	ErrUnknownCommand = errors.New("cmdbus: unknown command")
)

// Command is one dispatch in flight.
type Command struct {
	// ID uniquely identifies this dispatch.
	ID string
	// Name is the registered command name.
	Name string
	// Payload is the caller-supplied argument.
	Payload any
}

// Handler executes a command.
type Handler func(ctx context.Context, cmd Command) (any, error)

// Middleware wraps a Handler; it runs for every dispatch in registration
// order (first registered = outermost).
type Middleware func(next Handler) Handler

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

// Bus routes dispatches to registered handlers.
type Bus struct {
	mu         sync.RWMutex
	handlers   map[string]Handler
	middleware []Middleware
	log        *zap.Logger
}

// New returns an empty Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[string]Handler),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Register binds h to name.
func (b *Bus) Register(name string, h Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	if h == nil {
		return ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.handlers[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	b.handlers[name] = h
	b.log.Debug("command registered", zap.String("command", name))

	return nil
}

// Use appends mw to the middleware chain. Middleware registered before a
// Dispatch applies to it; Use during concurrent dispatch is safe.
func (b *Bus) Use(mw Middleware) {
	if mw == nil {
		return
	}
	b.mu.Lock()
	b.middleware = append(b.middleware, mw)
	b.mu.Unlock()
}

// Dispatch runs the handler registered for name with the given payload.
func (b *Bus) Dispatch(ctx context.Context, name string, payload any) (any, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	b.mu.RLock()
	h, ok := b.handlers[name]
	chain := make([]Middleware, len(b.middleware))
	copy(chain, b.middleware)
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	// Wrap inside-out so the first registered middleware runs outermost.
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	cmd := Command{
		ID:      uuid.NewString(),
		Name:    name,
		Payload: payload,
	}
	start := time.Now()
	res, err := h(ctx, cmd)
	b.log.Debug("command dispatched",
		zap.String("command", name),
		zap.String("dispatch_id", cmd.ID),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))

	return res, err
}

// Commands returns the registered command names (order unspecified).
func (b *Bus) Commands() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.handlers))
	for n := range b.handlers {
		names = append(names, n)
	}

	return names
}
