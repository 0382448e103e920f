package chain

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Execute starts a chain from a wrapped callable
func Execute[A, T, E any](ctx context.Context, fn rop.Async[A, T, E], arg A) *Chain[T] {
	return Start(ctx, rop.Execute(ctx, fn, arg))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.FlatMap(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// ThenExecute feeds the success value into a wrapped callable
func ThenExecute[T, U, E any](c *Chain[T], fn rop.Async[T, U, E]) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) rop.Result[U] {
		return rop.Execute(ctx, fn, v)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Filter fails the chain when predicate rejects the value
func (c *Chain[T]) Filter(predicate func(context.Context, T) bool,
	errorFactory func(context.Context, T) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Filter(c.ctx, c.result, predicate, errorFactory),
	}
}

// Recover replaces a failure with a value
func (c *Chain[T]) Recover(onFailure func(context.Context, *rop.ResultError) T) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Recover(c.ctx, c.result, onFailure),
	}
}

// OrElse replaces a failure with another result
func (c *Chain[T]) OrElse(onFailure func(context.Context, *rop.ResultError) rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OrElse(c.ctx, c.result, onFailure),
	}
}

// MapErr rewrites a failure
func (c *Chain[T]) MapErr(onFailure func(context.Context, *rop.ResultError) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.MapErr(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tap(c.ctx, c.result, onSuccess),
	}
}

// EnsureErr performs a side effect on failure without changing the result
func (c *Chain[T]) EnsureErr(onFailure func(context.Context, *rop.ResultError)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.TapErr(c.ctx, c.result, onFailure),
	}
}

// Finally collapses the chain into a final result using solo.Match
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, *rop.ResultError) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
