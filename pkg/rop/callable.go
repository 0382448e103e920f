package rop

import (
	"context"
	"errors"
)

var errNilCallable = errors.New("rop: nil callable")

// Either tags a callable that may fail with L or R. It only exists at
// compile time; failures are always carried as *ResultError.
type Either[L, R any] struct{}

// Async is a context-aware callable declared to fail with E.
type Async[A, T, E any] struct {
	fn func(ctx context.Context, arg A) (T, error)
}

// Sync is a callable without a context declared to fail with E.
type Sync[A, T, E any] struct {
	fn func(arg A) (T, error)
}

// Mapper is a pure transform declared to fail with M.
type Mapper[In, Out, M any] struct {
	fn func(in In) (Out, error)
}

// WrapAsync pairs fn with its failure tag. E is usually the only type
// argument given explicitly:
//
//	var fetchUser = rop.WrapAsync[*ApiError](fetch)
func WrapAsync[E, A, T any](fn func(ctx context.Context, arg A) (T, error)) Async[A, T, E] {
	return Async[A, T, E]{fn: fn}
}

func WrapSync[E, A, T any](fn func(arg A) (T, error)) Sync[A, T, E] {
	return Sync[A, T, E]{fn: fn}
}

func WrapMapper[M, In, Out any](fn func(in In) (Out, error)) Mapper[In, Out, M] {
	return Mapper[In, Out, M]{fn: fn}
}

// Func returns the wrapped function. Calling it directly bypasses the
// executor: errors are returned and panics propagate.
func (a Async[A, T, E]) Func() func(ctx context.Context, arg A) (T, error) {
	return a.fn
}

func (s Sync[A, T, E]) Func() func(arg A) (T, error) {
	return s.fn
}

func (m Mapper[In, Out, M]) Func() func(in In) (Out, error) {
	return m.fn
}

// Async lifts a sync callable; the context is ignored.
func (s Sync[A, T, E]) Async() Async[A, T, E] {
	return Async[A, T, E]{fn: func(_ context.Context, arg A) (T, error) {
		return s.fn(arg)
	}}
}
