package singleton

// New creates a singleton factory function.
// Returns a function that will always return the same instance.
func New[R any](constructor func() R, opts ...Option) func() R {
	var h *Holder[struct{}, R]
	if constructor == nil {
		h = NewHolder[struct{}, R](nil, opts...)
	} else {
		h = NewHolder(func(struct{}) (R, error) {
			return constructor(), nil
		}, opts...)
	}
	return func() R {
		return h.MustGet(struct{}{})
	}
}

// NewWithOpts creates a singleton factory function that accepts a config parameter.
// Only the config of the first call is used; later ones are ignored.
func NewWithOpts[T any, R any](constructor func(T) R, opts ...Option) func(T) R {
	var h *Holder[T, R]
	if constructor == nil {
		h = NewHolder[T, R](nil, opts...)
	} else {
		h = NewHolder(func(cfg T) (R, error) {
			return constructor(cfg), nil
		}, opts...)
	}
	return func(cfg T) R {
		return h.MustGet(cfg)
	}
}
