package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults used by [RetryWithBackoff] for CDN asset downloads. Three
// attempts with a doubling delay keep a flaky network from failing a
// render while still giving up within a few seconds.
const (
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// RetryableError marks an error as transient. [Get] wraps timeouts,
// connection failures and 5xx responses in this type; anything else is
// treated as permanent and fails the download on the first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn until it succeeds, returns a permanent error, or attempts
// are exhausted. Only errors wrapped in [RetryableError] trigger another
// attempt. The delay doubles between attempts; ctx cancellation during a
// delay returns ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the package defaults. Asset fetching goes
// through this wrapper so every download shares the same retry budget.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultDelay, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
