package keyup

import (
	"context"
	"slices"
	"sync"
)

// Scope runs cleanup when the component that owns it is destroyed.
// Implementations call each teardown function exactly once.
type Scope interface {
	OnTeardown(fn func())
}

// Lifetime is a Scope closed explicitly with Close.
type Lifetime struct {
	callbacks []*teardown
	closed    bool
	done      chan struct{}
	mu        sync.Mutex
}

// NewLifetime creates an open Lifetime.
func NewLifetime() *Lifetime {
	return &Lifetime{done: make(chan struct{})}
}

// LifetimeFromContext returns a Lifetime that closes when ctx is done.
func LifetimeFromContext(ctx context.Context) *Lifetime {
	l := NewLifetime()
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-l.done:
		}
	}()
	return l
}

type teardown struct {
	fn func()
}

// OnTeardown schedules fn for Close. On a closed Lifetime fn runs immediately.
func (l *Lifetime) OnTeardown(fn func()) {
	l.add(fn)
}

// add schedules fn and returns its entry, or nil if fn already ran.
func (l *Lifetime) add(fn func()) *teardown {
	if fn == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		fn()
		return nil
	}
	t := &teardown{fn: fn}
	l.callbacks = append(l.callbacks, t)
	l.mu.Unlock()
	return t
}

// remove drops a scheduled entry without running it.
func (l *Lifetime) remove(t *teardown) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callbacks = slices.DeleteFunc(l.callbacks, func(c *teardown) bool { return c == t })
}

// Close runs the teardown functions in reverse order. Every function runs
// even if an earlier one panics. Only the first call has an effect.
func (l *Lifetime) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	callbacks := l.callbacks
	l.callbacks = nil
	close(l.done)
	l.mu.Unlock()

	runTeardown(callbacks)
}

// Closed reports whether Close has been called
func (l *Lifetime) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Done is closed when the Lifetime closes.
func (l *Lifetime) Done() <-chan struct{} {
	return l.done
}

// Child returns a Lifetime that closes no later than l. Closing the child
// first detaches it from l.
func (l *Lifetime) Child() *Lifetime {
	child := NewLifetime()
	if entry := l.add(child.Close); entry != nil {
		child.OnTeardown(func() { l.remove(entry) })
	}
	return child
}

func runTeardown(callbacks []*teardown) {
	if len(callbacks) == 0 {
		return
	}
	last := len(callbacks) - 1
	defer runTeardown(callbacks[:last])
	callbacks[last].fn()
}

// Use registers bindings on src and releases them when scope tears down.
func Use(scope Scope, src Source, bindings []Binding, opts ...Option) (*Registration, error) {
	if scope == nil {
		return nil, ErrNilScope
	}

	reg, err := Register(src, bindings, opts...)
	if err != nil {
		return nil, err
	}
	scope.OnTeardown(reg.Release)
	return reg, nil
}
