package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_SuccessAccessors(t *testing.T) {
	t.Parallel()

	r := Success(3)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.NoError(t, r.Err())
	assert.Nil(t, r.Failure())
	assert.Equal(t, 3, r.Must())
	assert.Equal(t, 3, r.UnwrapOr(9))
	assert.Equal(t, "Success(3)", r.String())
	assert.False(t, r.CreatedAt().IsZero())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestResult_FailureExposesRawError(t *testing.T) {
	t.Parallel()

	raw := errors.New("disk full")
	r := Fail[int](raw)

	assert.True(t, r.IsFailure())
	assert.Equal(t, 9, r.UnwrapOr(9))
	assert.Equal(t, "Failure(UNKNOWN_ERROR: disk full)", r.String())

	_, err := r.Unwrap()
	assert.Same(t, raw, err)

	assert.PanicsWithValue(t, raw, func() { r.Must() })
	assert.ErrorIs(t, r.Err(), raw)
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	src := Fail[int](errors.New("bad"))
	moved := FailFrom[int, string](src)

	assert.Equal(t, src.Id(), moved.Id())
	assert.Equal(t, src.CreatedAt(), moved.CreatedAt())
	assert.Same(t, src.Failure(), moved.Failure())

	misuse := FailFrom[int, string](Success(1))
	assert.True(t, misuse.IsFailure())
}

func TestFailure_NilIsNormalized(t *testing.T) {
	t.Parallel()

	r := Failure[int](nil)
	require.NotNil(t, r.Failure())
	assert.Equal(t, CodeUnknown, r.Failure().Code)
	assert.Error(t, r.Err())
}

func TestResult_ZeroValueIsFailure(t *testing.T) {
	t.Parallel()

	var r Result[int]
	assert.True(t, r.IsFailure())
	require.NotNil(t, r.Failure())
	assert.Equal(t, CodeUnknown, r.Failure().Code)
	assert.NotNil(t, r.Failure().Raw)
	assert.Error(t, r.Err())

	moved := FailFrom[int, string](r)
	require.NotNil(t, moved.Failure())
	assert.Equal(t, CodeUnknown, moved.Failure().Code)
	assert.Equal(t, "Failure(UNKNOWN_ERROR: Unknown error: <nil>)", r.String())

	_, err := r.Unwrap()
	assert.Error(t, err)
}

func TestGetErrors_ExpandsAggregates(t *testing.T) {
	t.Parallel()

	a, b := Normalize("a"), Normalize("b")
	agg := Fail[int](&AggregateError{Errors: []*ResultError{a, b}})

	errs := GetErrors(agg.Err())
	require.Len(t, errs, 2)
	assert.Same(t, a, errs[0])
	assert.Same(t, b, errs[1])
	assert.Equal(t, CodeAggregate, agg.Failure().Code)
	assert.Equal(t, "2 results failed: a; b", agg.Failure().Message)

	assert.Empty(t, GetErrors(nil))
	assert.Len(t, GetErrors(errors.New("x")), 1)
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(Fail[int](context.DeadlineExceeded).Err()))
	assert.True(t, IsCancellationError(fmt.Errorf("fetch: %w", context.Canceled)))
	assert.False(t, IsCancellationError(errors.New("boom")))
	assert.False(t, IsCancellationError(nil))
}
