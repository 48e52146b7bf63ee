package singleton

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// State reports whether a Holder has built its instance yet.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// Holder lazily constructs one T from the arguments of the first successful
// Get and hands out that same T on every later call. Arguments passed after
// that are ignored.
//
// A failed construction leaves the Holder uninitialized, so the next Get
// runs the constructor again. Use WithRetryLimiter to bound how often that
// happens.
//
// Identity is only meaningful when T is a pointer (or holds one); value
// types are copied out of the Holder like any other Go value.
type Holder[A any, T any] struct {
	ctor     func(A) (T, error)
	instance atomic.Pointer[T]
	group    singleflight.Group

	log     *zap.Logger
	limiter *rate.Limiter

	// failure is only touched inside group.Do, which never runs two
	// constructions at once.
	failure error
}

// NewHolder returns an uninitialized Holder that builds its instance with ctor.
func NewHolder[A any, T any](ctor func(A) (T, error), opts ...Option) *Holder[A, T] {
	o := buildOptions(opts)
	return &Holder[A, T]{
		ctor:    ctor,
		log:     o.logger(),
		limiter: o.limiter,
	}
}

// Get returns the instance, constructing it from args if none exists yet.
// Constructor errors are returned as is.
func (h *Holder[A, T]) Get(args A) (T, error) {
	if p := h.instance.Load(); p != nil {
		return *p, nil
	}

	v, err, _ := h.group.Do("instance", func() (any, error) {
		if p := h.instance.Load(); p != nil {
			return *p, nil
		}
		return h.construct(args)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	// v is a nil interface when T is an interface type and ctor returned nil.
	t, _ := v.(T)
	return t, nil
}

// MustGet is like Get but panics if the instance cannot be constructed.
func (h *Holder[A, T]) MustGet(args A) T {
	v, err := h.Get(args)
	if err != nil {
		panic(err)
	}
	return v
}

// Loaded returns the instance without constructing it.
func (h *Holder[A, T]) Loaded() (T, bool) {
	if p := h.instance.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

func (h *Holder[A, T]) State() State {
	if h.instance.Load() != nil {
		return Initialized
	}
	return Uninitialized
}

func (h *Holder[A, T]) construct(args A) (T, error) {
	var zero T
	if h.ctor == nil {
		return zero, ErrNilConstructor
	}
	if h.failure != nil && h.limiter != nil && !h.limiter.Allow() {
		h.log.Debug("retry throttled", zap.Error(h.failure))
		return zero, &ThrottledError{Err: h.failure}
	}

	h.log.Debug("constructing instance", zap.Bool("retry", h.failure != nil))
	v, err := h.ctor(args)
	if err != nil {
		h.failure = err
		h.log.Warn("construction failed", zap.Error(err))
		return zero, err
	}
	h.failure = nil
	h.instance.Store(&v)
	h.log.Debug("instance constructed")
	return v, nil
}
