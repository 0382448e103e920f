package tiny

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.FlatMap(c.ctx, c.res, onSuccess)}
}

// To runs a wrapped callable over the value
func To[T, E any](c Chain[T], fn rop.Async[T, T, E]) Chain[T] {
	return c.Then(func(ctx context.Context, t T) rop.Result[T] {
		return rop.Execute(ctx, fn, t)
	})
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or the first failure when none succeeded
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	var failed *Chain[T]

	for _, ch := range append([]Chain[T]{c}, alternatives...) {
		if ch.res.IsSuccess() {
			return ch
		}
		if failed == nil {
			failed = &ch
		}
	}

	return *failed
}

// And returns the first failed chain, or the last one when all succeeded
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c

	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}

	return last
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T),
	onFailure func(context.Context, *rop.ResultError)) Chain[T] {

	if onSuccess != nil {
		solo.Tap(c.ctx, c.res, onSuccess)
	}
	if onFailure != nil {
		solo.TapErr(c.ctx, c.res, onFailure)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Match
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, *rop.ResultError) T,
) T {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}
