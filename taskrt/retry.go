package taskrt

import (
	"time"

	"github.com/joeycumines/go-catrate"
)

// Retry calls fn up to retries+1 times (the original attempt plus
// retries retries), yielding once between attempts so the executor can
// service other tasks. It returns the first successful result, or
// [ErrRetriesExceeded] once every attempt has failed.
func Retry[T any](y Yielder, retries int, fn func() (T, error)) (T, error) {
	var zero T
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			y.Noop()
		}
		v, err := fn()
		if err == nil {
			return v, nil
		}
	}
	return zero, WrapError("retry", ErrRetriesExceeded)
}

// RetryOption is the Option-like counterpart of [Retry]: it reports
// success via the bool rather than an error, for callers whose fn
// signals failure by absence rather than by error value.
func RetryOption[T any](y Yielder, retries int, fn func() (T, bool)) (T, bool) {
	var zero T
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			y.Noop()
		}
		if v, ok := fn(); ok {
			return v, true
		}
	}
	return zero, false
}

// RetryLimited is [Retry] paced by a [catrate.Limiter]: between
// attempts, it suspends the task until the limiter reports category is
// allowed again, rather than retrying as fast as the scheduler permits.
// This keeps a flaky dependency's retries from starving other tasks of
// the executor's single thread of control.
func RetryLimited[T any](y Yielder, retries int, limiter *catrate.Limiter, category any, fn func() (T, error)) (T, error) {
	var zero T
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			waitForLimiter(y, limiter, category)
		}
		v, err := fn()
		if err == nil {
			return v, nil
		}
	}
	return zero, WrapError("retry", ErrRetriesExceeded)
}

func waitForLimiter(y Yielder, limiter *catrate.Limiter, category any) {
	for {
		next, allowed := limiter.Allow(category)
		if allowed {
			return
		}
		wait := time.Until(next)
		if wait <= 0 {
			y.Noop()
			continue
		}
		y.Sleep(uint64(wait.Seconds()) + 1)
	}
}
