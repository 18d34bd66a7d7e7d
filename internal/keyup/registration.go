package keyup

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// State is the lifecycle state of a Registration.
type State int

const (
	StateActive State = iota + 1
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateReleased:
		return "released"
	default:
		return "unregistered"
	}
}

// Option configures Register.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	validate bool
}

// WithLogger sets the logger used for registration and dispatch debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutValidation skips the binding checks done by Register. A binding
// with a nil action still matches its key but does nothing.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}

// Registration is one listener attached to a Source on behalf of a binding
// set. It is created Active by Register and becomes Released, for good, on
// the first call to Release.
type Registration struct {
	bindings []Binding
	listener *Listener
	logger   *slog.Logger
	once     sync.Once
	released atomic.Bool
	src      Source
}

// Register attaches one key-release listener to src that runs the action of
// the first binding matching each event's key. The bindings are copied.
func Register(src Source, bindings []Binding, opts ...Option) (*Registration, error) {
	o := options{
		logger:   slog.New(slog.DiscardHandler),
		validate: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if src == nil {
		return nil, ErrNilSource
	}
	if o.validate {
		if err := Validate(bindings); err != nil {
			return nil, err
		}
	}

	r := &Registration{
		bindings: slices.Clone(bindings),
		logger:   o.logger,
		src:      src,
	}
	r.listener = NewListener(r.dispatch)
	src.AddListener(KeyUp, r.listener)

	r.logger.Debug("Key bindings registered", "bindings", len(r.bindings), "keys", r.Keys())
	return r, nil
}

// Release detaches the listener. Calls after the first have no effect.
func (r *Registration) Release() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		r.released.Store(true)
		r.src.RemoveListener(KeyUp, r.listener)
		r.logger.Debug("Key bindings released", "bindings", len(r.bindings))
	})
}

// State reports whether the registration is still attached.
func (r *Registration) State() State {
	if r.released.Load() {
		return StateReleased
	}
	return StateActive
}

// Keys returns the bound key identifiers in binding order.
func (r *Registration) Keys() []string {
	keys := make([]string, len(r.bindings))
	for i, b := range r.bindings {
		keys[i] = b.Key
	}
	return keys
}

func (r *Registration) dispatch(ev Event) {
	if ev == nil || r.released.Load() {
		return
	}
	key := ev.Key()

	i, ok := match(r.bindings, key)
	if !ok {
		return
	}

	r.logger.Debug("Key binding matched", "key", key, "index", i)
	if fn := r.bindings[i].Fn; fn != nil {
		fn()
	}
}
