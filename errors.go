package singleton

import "errors"

// ErrNilConstructor is returned by Get on a Holder created with a nil constructor.
var ErrNilConstructor = errors.New("singleton: nil constructor")

// ThrottledError is returned when a retry limiter refuses another
// construction attempt. Err is the error of the last failed attempt.
type ThrottledError struct {
	Err error
}

func (e *ThrottledError) Error() string {
	return "singleton: retry throttled: " + e.Err.Error()
}

func (e *ThrottledError) Unwrap() error { return e.Err }
