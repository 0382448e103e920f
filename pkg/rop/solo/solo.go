package solo

import (
	"context"
	"errors"
	"slices"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// recoverInto turns a panic raised by a callback into a failure stored in res.
func recoverInto[T any](res *rop.Result[T]) {
	if r := recover(); r != nil {
		*res = rop.Failure[T](rop.FromPanic(r))
	}
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) (res rop.Result[Out]) {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	defer recoverInto(&res)
	return rop.Success(onSuccess(ctx, input.Result()))
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) (res rop.Result[Out]) {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	defer recoverInto(&res)

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.Fail[Out](err)
	}

	return rop.Success(out)
}

// MapWith runs a wrapped mapper over the success value.
func MapWith[In, Out, M any](input rop.Result[In], mapper rop.Mapper[In, Out, M]) rop.Result[Out] {
	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Apply(mapper, input.Result())
}

func FlatMap[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) (res rop.Result[Out]) {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	defer recoverInto(&res)
	return onSuccess(ctx, input.Result())
}

// MapErr replaces the failure with the normalized output of onFailure.
func MapErr[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err *rop.ResultError) error) (res rop.Result[T]) {

	if input.IsSuccess() {
		return input
	}

	defer recoverInto(&res)
	return rop.Fail[T](onFailure(ctx, input.Failure()))
}

// Recover turns a failure into a success holding the handler's value.
func Recover[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err *rop.ResultError) T) (res rop.Result[T]) {

	if input.IsSuccess() {
		return input
	}

	defer recoverInto(&res)
	return rop.Success(onFailure(ctx, input.Failure()))
}

// OrElse turns a failure into whatever Result the handler returns.
func OrElse[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err *rop.ResultError) rop.Result[T]) (res rop.Result[T]) {

	if input.IsSuccess() {
		return input
	}

	defer recoverInto(&res)
	return onFailure(ctx, input.Failure())
}

// Filter downgrades a success to a failure built by errorFactory when
// predicate rejects the value.
func Filter[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	errorFactory func(ctx context.Context, in T) error) (res rop.Result[T]) {

	if input.IsFailure() {
		return input
	}

	defer recoverInto(&res)

	if predicate(ctx, input.Result()) {
		return input
	}
	return rop.Fail[T](errorFactory(ctx, input.Result()))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	var errMsg string
	return Filter(ctx, input,
		func(ctx context.Context, in T) bool {
			var valid bool
			valid, errMsg = validate(ctx, in)
			return valid
		},
		func(context.Context, T) error {
			return errors.New(errMsg)
		})
}

// Tap runs a side effect on success. A panic inside it is logged and
// dropped; the result is returned unchanged.
func Tap[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		sideEffect(ctx, "tap", func() { onSuccess(ctx, input.Result()) })
	}

	return input
}

// TapErr is Tap for the failure branch.
func TapErr[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err *rop.ResultError)) rop.Result[T] {

	if input.IsFailure() {
		sideEffect(ctx, "tap error", func() { onFailure(ctx, input.Failure()) })
	}

	return input
}

func sideEffect(ctx context.Context, name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			e := rop.Normalize(r)
			core.LoggerFrom(ctx).Warn(name+": side effect panicked", core.Code(e.Code), core.Err(e))
		}
	}()
	f()
}

// Match collapses the result into a value.
func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err *rop.ResultError) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Failure())
}

// Partition splits results into success values and failures, keeping order.
func Partition[T any](results []rop.Result[T]) ([]T, []*rop.ResultError) {
	successes := make([]T, 0, len(results))
	var failures []*rop.ResultError

	for _, r := range results {
		if r.IsSuccess() {
			successes = append(successes, r.Result())
		} else {
			failures = append(failures, r.Failure())
		}
	}
	return successes, failures
}

// Collect succeeds with every value when no result failed. Otherwise it
// returns one failure whose raw error is a *rop.AggregateError listing the
// failures in order.
func Collect[T any](results []rop.Result[T]) rop.Result[[]T] {
	successes, failures := Partition(results)
	if len(failures) == 0 {
		return rop.Success(successes)
	}
	return rop.Fail[[]T](&rop.AggregateError{Errors: failures})
}

// ValidateAll runs every validator against the result each one produces,
// gathering failures into an aggregate. With breakOnError it stops at the
// first failure.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var failures []*rop.ResultError
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				failures = appendNew(failures, current.Failure())
			}

			switch len(failures) {
			case 0:
				return current
			case 1:
				return rop.Failure[T](failures[0])
			default:
				return rop.Fail[T](&rop.AggregateError{Errors: slices.Clone(failures)})
			}
		},
		inputsF...,
	)
}

// appendNew expands aggregates and skips failures already gathered, so a
// validator passing the previous failure through does not count it twice.
func appendNew(acc []*rop.ResultError, err *rop.ResultError) []*rop.ResultError {
	if agg, ok := err.Raw.(*rop.AggregateError); ok {
		for _, e := range agg.Errors {
			acc = appendNew(acc, e)
		}
		return acc
	}
	if slices.Contains(acc, err) {
		return acc
	}
	return append(acc, err)
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
