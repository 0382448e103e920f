package resilience

import (
	"context"
	"time"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/backoff"
	"github.com/ib-77/ropresult/pkg/rop/compose"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

type RetryOptions struct {
	// Delay before each retry. Zero retries immediately.
	Delay time.Duration
	// Exponential doubles the delay on every retry: Delay, 2*Delay, 4*Delay...
	Exponential bool
	// Backoff, when set, replaces Delay and Exponential.
	Backoff backoff.Backoff
	// Retryable filters which failures are retried. Nil retries all of them.
	Retryable func(err *rop.ResultError) bool
	// OnRetry is called after a failed attempt, before waiting.
	OnRetry func(attempt int, err *rop.ResultError, delay time.Duration)
	// Sleep waits between attempts. Nil uses a timer that stops early when
	// ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (o RetryOptions) strategy() backoff.Backoff {
	switch {
	case o.Backoff != nil:
		return o.Backoff
	case o.Exponential:
		return backoff.Exponential(o.Delay, 2)
	default:
		return backoff.Constant(o.Delay)
	}
}

func (o RetryOptions) sleep() func(ctx context.Context, d time.Duration) error {
	if o.Sleep != nil {
		return o.Sleep
	}
	return sleepCtx
}

// Retry executes fn until it succeeds, at most maxAttempts+1 times, and
// returns the last failure if every attempt fails. A negative maxAttempts
// counts as zero. If ctx is done between attempts, Retry stops with the
// context error; its Cause is the last failure. An attempt that itself
// failed with the context error is returned as is.
func Retry[A, T, E any](ctx context.Context, fn rop.Async[A, T, E], maxAttempts int,
	opts RetryOptions, arg A) rop.Result[T] {

	log := core.LoggerFrom(ctx)
	strategy := opts.strategy()
	sleep := opts.sleep()
	maxAttempts = max(maxAttempts, 0)

	for attempt := 1; ; attempt++ {
		res := rop.Execute(ctx, fn, arg)
		if res.IsSuccess() || attempt > maxAttempts {
			return res
		}

		failure := res.Failure()
		if opts.Retryable != nil && !opts.Retryable(failure) {
			log.Debug("retry: failure is not retryable", core.Attempt(attempt), core.Code(failure.Code))
			return res
		}

		if err := ctx.Err(); err != nil {
			if rop.IsCancellationError(failure) {
				return res
			}
			return stopped[T](err, failure)
		}

		delay := strategy.Next(int64(attempt - 1))
		if opts.OnRetry != nil {
			opts.OnRetry(attempt, failure, delay)
		}
		log.Debug("retry: attempt failed", core.Attempt(attempt), core.Code(failure.Code), core.Delay(delay))

		if delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				return stopped[T](err, failure)
			}
		}
	}
}

// RetrySync is Retry for sync callables.
func RetrySync[A, T, E any](fn rop.Sync[A, T, E], maxAttempts int, opts RetryOptions, arg A) rop.Result[T] {
	return Retry(context.Background(), fn.Async(), maxAttempts, opts, arg)
}

// WithRetry is Retry as a compose.Wrapper.
func WithRetry[A, T, E any](maxAttempts int, opts RetryOptions) compose.Wrapper[A, T, E] {
	return func(next rop.Async[A, T, E]) rop.Async[A, T, E] {
		return rop.WrapAsync[E](func(ctx context.Context, arg A) (T, error) {
			res := Retry(ctx, next, maxAttempts, opts, arg)
			return res.Result(), res.Err()
		})
	}
}

func stopped[T any](err error, last *rop.ResultError) rop.Result[T] {
	n := *rop.Normalize(err)
	n.Cause = last
	return rop.Failure[T](&n)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
