package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying data or a failure carrying a
// normalized *ResultError. ok is the only discriminant.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	err       *ResultError
	ok        bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		data:      r,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure from any error value; err goes through Normalize.
func Fail[T any](err error) Result[T] {
	return Failure[T](Normalize(err))
}

// Failure builds a failure from an already normalized error.
// A nil or incomplete err is normalized so the failure branch is never empty.
func Failure[T any](err *ResultError) Result[T] {
	return Result[T]{
		err:       Normalize(err),
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom moves a failure to another value type keeping its id, creation
// time and error. Calling it on a success yields a failure with an
// UNKNOWN_ERROR, so callers check IsSuccess first.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.ok {
		return Failure[Out](Normalize(fmt.Errorf("rop: FailFrom called on a success")))
	}
	return Result[Out]{
		err:       from.Failure(),
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.data
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.Failure()
}

// Failure returns the normalized error, or nil on success. The zero Result
// is a failure with an UNKNOWN_ERROR.
func (r Result[T]) Failure() *ResultError {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return Normalize(nil)
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Unwrap returns the data, or the raw error the failure was built from.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.data, nil
	}
	var zero T
	return zero, r.raw()
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.data
	}
	return fallback
}

// Must returns the data or panics with the raw error.
func (r Result[T]) Must() T {
	if r.ok {
		return r.data
	}
	panic(r.raw())
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.data)
	}
	e := r.Failure()
	return fmt.Sprintf("Failure(%s: %s)", e.Code, e.Message)
}

func (r Result[T]) raw() error {
	return r.Failure().Raw
}
