// Package retry provides a generic retry driver with exponential backoff,
// jitter, and deterministic waits for server declared rate limit windows
package retry

import (
	"context"
	"math/rand"
	"time"

	perr "devpulse/internal/platform/errors"
	"devpulse/internal/platform/logger"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
	defaultMaxDelay   = 60 * time.Second
)

// Options configures a retry loop
// zero values fall back to the defaults above
type Options struct {
	// MaxRetries bounds retries after the first attempt, so an operation
	// runs at most MaxRetries+1 times
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration

	// IsRetryable decides whether an error is worth another attempt.
	// Defaults to perr.Retryable
	IsRetryable func(error) bool

	// Test seams. Sleep replaces the context-aware wait entirely;
	// Jitter maps a cap to an extra delay in [0, cap]
	Sleep  func(time.Duration)
	Jitter func(time.Duration) time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetries
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = defaultBaseDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = defaultMaxDelay
	}
	if o.IsRetryable == nil {
		o.IsRetryable = perr.Retryable
	}
	if o.Jitter == nil {
		o.Jitter = func(cap time.Duration) time.Duration {
			if cap <= 0 {
				return 0
			}
			return time.Duration(rand.Int63n(int64(cap) + 1))
		}
	}
	return o
}

// Do runs op until it succeeds, the error is not retryable, or the attempt
// budget is spent. The last observed error is returned unchanged.
//
// A QuotaExceeded error sleeps exactly its declared retryAfter (BaseDelay
// when the server gave none) instead of the exponential schedule; everything
// else waits min(BaseDelay<<attempt, MaxDelay) plus up to 30% uniform jitter
func Do[T any](ctx context.Context, opts Options, op func(context.Context) (T, error)) (T, error) {
	var zero T
	o := opts.withDefaults()
	log := logger.Named("retry")

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !o.IsRetryable(err) || attempt >= o.MaxRetries {
			return zero, err
		}

		var wait time.Duration
		if perr.IsCode(err, perr.ErrorCodeQuotaExceeded) {
			wait = o.BaseDelay
			if ra, ok := perr.RetryAfterOf(err); ok {
				wait = ra
			}
			log.Warn().Dur("sleep", wait).Int("attempt", attempt).Msg("quota exhausted waiting for reset")
		} else {
			wait = backoff(o.BaseDelay, o.MaxDelay, attempt)
			wait += o.Jitter(wait * 3 / 10)
			log.Warn().Dur("sleep", wait).Int("attempt", attempt).Err(err).Msg("transient error retrying")
		}

		if o.Sleep != nil {
			o.Sleep(wait)
			continue
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// backoff is a simple exponential with cap
func backoff(base, max time.Duration, attempt int) time.Duration {
	ms := int64(base / time.Millisecond)
	ms = ms << uint(attempt)
	capMs := int64(max / time.Millisecond)
	if ms > capMs || ms <= 0 {
		ms = capMs
	}
	return time.Duration(ms) * time.Millisecond
}
