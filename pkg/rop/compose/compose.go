package compose

import (
	"context"
	"fmt"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

// ComposeFns returns a callable that runs f1 and feeds its value into f2.
// It stops at the first error and returns it unchanged.
func ComposeFns[A, B, C, E1, E2 any](f1 rop.Async[A, B, E1],
	f2 rop.Async[B, C, E2]) rop.Async[A, C, rop.Either[E1, E2]] {

	first, second := f1.Func(), f2.Func()

	return rop.WrapAsync[rop.Either[E1, E2]](func(ctx context.Context, arg A) (C, error) {
		b, err := first(ctx, arg)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(ctx, b)
	})
}

// ComposeSyncFns is ComposeFns for sync callables.
func ComposeSyncFns[A, B, C, E1, E2 any](f1 rop.Sync[A, B, E1],
	f2 rop.Sync[B, C, E2]) rop.Sync[A, C, rop.Either[E1, E2]] {

	first, second := f1.Func(), f2.Func()

	return rop.WrapSync[rop.Either[E1, E2]](func(arg A) (C, error) {
		b, err := first(arg)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(b)
	})
}

// ThenMap feeds the value of f into a mapper.
func ThenMap[A, B, C, E, M any](f rop.Async[A, B, E],
	m rop.Mapper[B, C, M]) rop.Async[A, C, rop.Either[E, M]] {

	first, mapper := f.Func(), m.Func()

	return rop.WrapAsync[rop.Either[E, M]](func(ctx context.Context, arg A) (C, error) {
		b, err := first(ctx, arg)
		if err != nil {
			var zero C
			return zero, err
		}
		return mapper(b)
	})
}

// Sequence chains same-typed steps left to right. With no steps it returns
// the identity.
func Sequence[T, E any](steps ...rop.Async[T, T, E]) rop.Async[T, T, E] {
	fns := make([]func(context.Context, T) (T, error), 0, len(steps))
	for _, s := range steps {
		fns = append(fns, s.Func())
	}

	return rop.WrapAsync[E](func(ctx context.Context, arg T) (T, error) {
		cur := arg
		for _, fn := range fns {
			next, err := fn(ctx, cur)
			if err != nil {
				var zero T
				return zero, err
			}
			cur = next
		}
		return cur, nil
	})
}

// Widen adds E2 to the failure tag of f without changing its behavior.
// Wrappers that introduce a new kind of failure use it to declare that kind.
func Widen[E2, A, T, E any](f rop.Async[A, T, E]) rop.Async[A, T, rop.Either[E, E2]] {
	return rop.WrapAsync[rop.Either[E, E2]](f.Func())
}

// Wrapper decorates a callable, e.g. with a retry or timeout policy.
type Wrapper[A, T, E any] func(next rop.Async[A, T, E]) rop.Async[A, T, E]

// Compose applies wrappers around base from left to right: the first
// wrapper is applied to base directly and each later one wraps the result
// so far. The last wrapper is therefore the outermost: it is entered first
// and sees the final outcome.
//
//	Compose(base, opts)(w1, w2) == w2(w1(base))
func Compose[A, T, E any](base rop.Async[A, T, E],
	opts core.Options) func(wrappers ...Wrapper[A, T, E]) rop.Async[A, T, E] {

	return func(wrappers ...Wrapper[A, T, E]) rop.Async[A, T, E] {
		log := opts.Log()
		composed := base

		for i, w := range wrappers {
			if w == nil {
				log.Warn("compose: skipping nil wrapper", core.Int("index", i))
				continue
			}
			composed = w(composed)
			log.Debug(fmt.Sprintf("compose: applied wrapper %d of %d", i+1, len(wrappers)))
		}

		return composed
	}
}

// Pipe executes f1 and, if it succeeds, f2 with its value.
func Pipe[A, B, C, E1, E2 any](ctx context.Context, f1 rop.Async[A, B, E1],
	f2 rop.Async[B, C, E2], arg A) rop.Result[C] {

	first := rop.Execute(ctx, f1, arg)
	if first.IsFailure() {
		core.LoggerFrom(ctx).Debug("pipe: first step failed", core.Code(first.Failure().Code))
		return rop.FailFrom[B, C](first)
	}

	second := rop.Execute(ctx, f2, first.Result())
	if second.IsFailure() {
		core.LoggerFrom(ctx).Debug("pipe: second step failed", core.Code(second.Failure().Code))
	}
	return second
}

// PipeSync is Pipe for sync callables.
func PipeSync[A, B, C, E1, E2 any](f1 rop.Sync[A, B, E1], f2 rop.Sync[B, C, E2], arg A) rop.Result[C] {
	first := rop.ExecuteSync(f1, arg)
	if first.IsFailure() {
		return rop.FailFrom[B, C](first)
	}
	return rop.ExecuteSync(f2, first.Result())
}
