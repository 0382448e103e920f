package rop

import "context"

// Execute runs fn with arg. A returned error or a panic becomes a failure
// holding the normalized error; anything else is a success. Execute does
// not retry, log or look at ctx itself.
func Execute[A, T, E any](ctx context.Context, fn Async[A, T, E], arg A) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](FromPanic(r))
		}
	}()

	if fn.fn == nil {
		return Fail[T](errNilCallable)
	}

	out, err := fn.fn(ctx, arg)
	if err != nil {
		return Fail[T](err)
	}
	return Success(out)
}

// ExecuteSync is Execute for sync callables.
func ExecuteSync[A, T, E any](fn Sync[A, T, E], arg A) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](FromPanic(r))
		}
	}()

	if fn.fn == nil {
		return Fail[T](errNilCallable)
	}

	out, err := fn.fn(arg)
	if err != nil {
		return Fail[T](err)
	}
	return Success(out)
}

// Apply runs a mapper on in.
func Apply[In, Out, M any](m Mapper[In, Out, M], in In) Result[Out] {
	return ExecuteSync(Sync[In, Out, M](m), in)
}

// TryCatch runs an unwrapped function under the same rules as Execute.
func TryCatch[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Result[T] {
	return Execute(ctx, WrapAsync[error](func(ctx context.Context, _ struct{}) (T, error) {
		return fn(ctx)
	}), struct{}{})
}

// Go runs Execute in its own goroutine. The channel is buffered and
// receives exactly one result, so the goroutine finishes even if nobody
// reads it.
func Go[A, T, E any](ctx context.Context, fn Async[A, T, E], arg A) <-chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		defer close(out)
		out <- Execute(ctx, fn, arg)
	}()

	return out
}
