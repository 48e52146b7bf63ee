package singleton

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Option func(*options)

type options struct {
	name    string
	log     *zap.Logger
	limiter *rate.Limiter
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) logger() *zap.Logger {
	l := o.log
	if l == nil {
		l = zap.NewNop()
	}
	if o.name != "" {
		l = l.With(zap.String("holder", o.name))
	}
	return l
}

// WithName labels the holder's log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for construction events. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithRetryLimiter throttles retries after a failed construction. When the
// limiter has no token left, Get returns a *ThrottledError wrapping the last
// constructor error instead of calling the constructor again. The first
// attempt is never throttled.
func WithRetryLimiter(limiter *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = limiter
	}
}
