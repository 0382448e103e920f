package resilience

import (
	"context"
	"fmt"
	"time"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/compose"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

// Timeout returns fn's result if it arrives within d, otherwise a
// rop.TimeoutError failure. The operation is abandoned, not cancelled: it
// receives ctx unchanged and may still finish in the background. If ctx is
// done first, the failure holds the context error.
func Timeout[A, T, E any](ctx context.Context, fn rop.Async[A, T, E], d time.Duration, arg A) rop.Result[T] {
	return race(ctx, rop.Go(ctx, fn, arg), d)
}

// WithTimeout is Timeout as a compose.Wrapper.
func WithTimeout[A, T, E any](d time.Duration) compose.Wrapper[A, T, E] {
	return func(next rop.Async[A, T, E]) rop.Async[A, T, E] {
		return rop.WrapAsync[E](func(ctx context.Context, arg A) (T, error) {
			res := Timeout(ctx, next, d, arg)
			return res.Result(), res.Err()
		})
	}
}

func race[T any](ctx context.Context, done <-chan rop.Result[T], d time.Duration) rop.Result[T] {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case res := <-done:
		return res
	case <-timer.C:
		core.LoggerFrom(ctx).Debug("timeout: operation abandoned", core.Duration("timeout", d))
		return rop.Fail[T](rop.TimeoutError.New(fmt.Sprintf("operation timed out after %s", d),
			rop.WithData(map[string]any{"timeout": d})))
	case <-ctx.Done():
		return rop.Fail[T](ctx.Err())
	}
}
