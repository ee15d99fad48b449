package apiclient

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy decides how transport failures are retried.
// Backoff maps the 1-based number of the failed attempt to the wait before
// the next one.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// LinearBackoff waits attempt × base after each failure.
func LinearBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// DefaultRetryPolicy makes 3 attempts with 1s and 2s waits in between.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: LinearBackoff(time.Second)}
}

func (p RetryPolicy) attempts() int {
	return max(1, p.MaxAttempts)
}

// Delays returns the waits between consecutive attempts.
func (p RetryPolicy) Delays() []time.Duration {
	out := make([]time.Duration, 0, p.attempts()-1)
	for i := 1; i < p.attempts(); i++ {
		out = append(out, p.delay(i))
	}
	return out
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return max(0, p.Backoff(attempt))
}

// Do runs fn until it succeeds, returns an error not marked with
// retry.RetryableError, or the attempts run out. onRetry, if set, is called
// before each wait. Cancelling ctx stops the loop with ctx.Err().
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error, onRetry func(attempt int, wait time.Duration, err error)) error {
	var (
		attempt int
		lastErr error
	)

	next := retry.BackoffFunc(func() (time.Duration, bool) {
		wait := p.delay(attempt)
		if onRetry != nil {
			onRetry(attempt, wait, lastErr)
		}
		return wait, false
	})
	backoff := retry.WithMaxRetries(uint64(p.attempts()-1), next)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		lastErr = fn(ctx)
		return lastErr
	})
}
