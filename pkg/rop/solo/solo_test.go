package solo

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
)

type mockLogger struct{ mock.Mock }

func (m *mockLogger) Debug(msg string, _ ...slog.Attr) { m.Called(msg) }
func (m *mockLogger) Info(msg string, _ ...slog.Attr)  { m.Called(msg) }
func (m *mockLogger) Warn(msg string, _ ...slog.Attr)  { m.Called(msg) }
func (m *mockLogger) Error(msg string, _ ...slog.Attr) { m.Called(msg) }

func mustNotCall[T, U any](t *testing.T) func(context.Context, T) U {
	return func(context.Context, T) U {
		t.Fatalf("callback must not run on a failure")
		var zero U
		return zero
	}
}

func TestShortCircuit_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failed := rop.Fail[int](errors.New("boom"))

	mapped := Map(ctx, failed, mustNotCall[int, string](t))
	assert.Same(t, failed.Failure(), mapped.Failure())
	assert.Equal(t, failed.Id(), mapped.Id())

	flat := FlatMap(ctx, failed, mustNotCall[int, rop.Result[string]](t))
	assert.Same(t, failed.Failure(), flat.Failure())

	filtered := Filter(ctx, failed, mustNotCall[int, bool](t), mustNotCall[int, error](t))
	assert.Equal(t, failed, filtered)

	tried := Try(ctx, failed, func(context.Context, int) (string, error) {
		t.Fatalf("callback must not run on a failure")
		return "", nil
	})
	assert.Same(t, failed.Failure(), tried.Failure())
}

func TestMap_TransformsAndNormalizesPanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, rop.Success(21), func(_ context.Context, v int) int { return v * 2 })
	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.Result())

	bad := Map(ctx, rop.Success(1), func(_ context.Context, v int) int {
		var m map[string]int
		m["x"] = v
		return v
	})
	require.True(t, bad.IsFailure())
	assert.Contains(t, bad.Failure().Message, "assignment to entry in nil map")
	assert.NotEmpty(t, bad.Failure().Stack)
}

func TestTry_ErrorBecomesFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, rop.Success("x1"), func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	require.True(t, out.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, out.Err(), &numErr)
}

func TestMapWith_Mapper(t *testing.T) {
	t.Parallel()

	toStr := rop.WrapMapper[error](func(n int) (string, error) { return strconv.Itoa(n), nil })
	assert.Equal(t, "5", MapWith(rop.Success(5), toStr).Result())

	failed := rop.Fail[int](errors.New("nope"))
	assert.Same(t, failed.Failure(), MapWith(failed, toStr).Failure())
}

func TestFlatMap_ChainsResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	half := func(_ context.Context, n int) rop.Result[int] {
		if n%2 != 0 {
			return rop.Fail[int](errors.New("odd"))
		}
		return rop.Success(n / 2)
	}

	assert.Equal(t, 4, FlatMap(ctx, rop.Success(8), half).Result())
	assert.Equal(t, "odd", FlatMap(ctx, rop.Success(3), half).Err().Error())

	panicked := FlatMap(ctx, rop.Success(1), func(context.Context, int) rop.Result[int] { panic("flat") })
	assert.Equal(t, "flat", panicked.Failure().Message)
}

func TestMapErr_OnlyTouchesFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wrap := func(_ context.Context, err *rop.ResultError) error { return errors.New("wrapped: " + err.Message) }

	ok := rop.Success(1)
	assert.Equal(t, ok, MapErr(ctx, ok, wrap))

	out := MapErr(ctx, rop.Fail[int](errors.New("inner")), wrap)
	assert.Equal(t, "wrapped: inner", out.Err().Error())

	panicked := MapErr(ctx, rop.Fail[int](errors.New("inner")), func(context.Context, *rop.ResultError) error {
		panic("mapErr")
	})
	assert.Equal(t, "mapErr", panicked.Failure().Message)
}

func TestRecoverAndOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failed := rop.Fail[int](errors.New("missing"))

	recovered := Recover(ctx, failed, func(_ context.Context, err *rop.ResultError) int { return len(err.Message) })
	require.True(t, recovered.IsSuccess())
	assert.Equal(t, 7, recovered.Result())

	ok := rop.Success(1)
	assert.Equal(t, ok, Recover(ctx, ok, func(context.Context, *rop.ResultError) int { return 0 }))

	other := OrElse(ctx, failed, func(context.Context, *rop.ResultError) rop.Result[int] {
		return rop.Fail[int](errors.New("fallback failed"))
	})
	assert.Equal(t, "fallback failed", other.Err().Error())

	panicked := Recover(ctx, failed, func(context.Context, *rop.ResultError) int { panic("handler") })
	require.True(t, panicked.IsFailure())
	assert.Equal(t, "handler", panicked.Failure().Message)
}

func TestFilter_DowngradesRejectedSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(_ context.Context, n int) bool { return n > 0 }
	factory := func(_ context.Context, n int) error { return errors.New(strconv.Itoa(n) + " is not positive") }

	kept := rop.Success(3)
	assert.Equal(t, kept, Filter(ctx, kept, positive, factory))

	rejected := Filter(ctx, rop.Success(-2), positive, factory)
	require.True(t, rejected.IsFailure())
	assert.Equal(t, "-2 is not positive", rejected.Err().Error())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	notEmpty := func(_ context.Context, s string) (bool, string) { return s != "", "empty" }

	assert.True(t, Validate(ctx, "a", notEmpty).IsSuccess())
	assert.Equal(t, "empty", Validate(ctx, "", notEmpty).Err().Error())
}

func TestTap_SwallowsAndLogsPanics(t *testing.T) {
	t.Parallel()

	logger := &mockLogger{}
	logger.On("Warn", "tap: side effect panicked").Once()
	logger.On("Warn", "tap error: side effect panicked").Once()
	ctx := core.WithLogger(context.Background(), logger)

	ok := rop.Success(5)
	out := Tap(ctx, ok, func(context.Context, int) { panic("side effect") })
	assert.Equal(t, ok, out)

	failed := rop.Fail[int](errors.New("x"))
	out = TapErr(ctx, failed, func(context.Context, *rop.ResultError) { panic("side effect") })
	assert.Equal(t, failed, out)

	logger.AssertExpectations(t)
}

func TestTap_RunsOnMatchingBranchOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var seen []string

	Tap(ctx, rop.Success(1), func(context.Context, int) { seen = append(seen, "tap") })
	Tap(ctx, rop.Fail[int](errors.New("x")), func(context.Context, int) { seen = append(seen, "tap-on-failure") })
	TapErr(ctx, rop.Success(1), func(context.Context, *rop.ResultError) { seen = append(seen, "taperr-on-success") })
	TapErr(ctx, rop.Fail[int](errors.New("x")), func(context.Context, *rop.ResultError) { seen = append(seen, "taperr") })

	assert.Equal(t, []string{"tap", "taperr"}, seen)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	e := rop.Normalize(errors.New("e"))
	out := Collect([]rop.Result[int]{rop.Success(1), rop.Failure[int](e), rop.Success(2)})
	require.True(t, out.IsFailure())
	assert.Equal(t, rop.CodeAggregate, out.Failure().Code)

	var agg *rop.AggregateError
	require.ErrorAs(t, out.Err(), &agg)
	require.Len(t, agg.Errors, 1)
	assert.Same(t, e, agg.Errors[0])

	all := Collect([]rop.Result[int]{rop.Success(1), rop.Success(2)})
	require.True(t, all.IsSuccess())
	assert.Equal(t, []int{1, 2}, all.Result())

	empty := Collect[int](nil)
	require.True(t, empty.IsSuccess())
	assert.Empty(t, empty.Result())
}

func TestCollect_ZeroValueResultIsAFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var zero rop.Result[int]
	fromCallback := FlatMap(ctx, rop.Success(1), func(context.Context, int) rop.Result[int] { return zero })
	require.NotNil(t, fromCallback.Failure())

	out := Collect([]rop.Result[int]{rop.Success(1), fromCallback})
	require.True(t, out.IsFailure())
	assert.Equal(t, rop.CodeAggregate, out.Failure().Code)
	assert.Equal(t, "1 result failed: Unknown error: <nil>", out.Failure().Message)

	var agg *rop.AggregateError
	require.ErrorAs(t, out.Err(), &agg)
	require.Len(t, agg.Errors, 1)
	assert.Equal(t, rop.CodeUnknown, agg.Errors[0].Code)
}

func TestPartition_KeepsOrder(t *testing.T) {
	t.Parallel()

	a, b := rop.Normalize("a"), rop.Normalize("b")
	ok, failed := Partition([]rop.Result[string]{
		rop.Failure[string](a), rop.Success("x"), rop.Failure[string](b), rop.Success("y"),
	})
	assert.Equal(t, []string{"x", "y"}, ok)
	assert.Equal(t, []*rop.ResultError{a, b}, failed)
}

func TestMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onOk := func(_ context.Context, n int) string { return "ok:" + strconv.Itoa(n) }
	onErr := func(_ context.Context, err *rop.ResultError) string { return "err:" + err.Code }

	assert.Equal(t, "ok:1", Match(ctx, rop.Success(1), onOk, onErr))
	assert.Equal(t, "err:UNKNOWN_ERROR", Match(ctx, rop.Fail[int](errors.New("x")), onOk, onErr))
}
