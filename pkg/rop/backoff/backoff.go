// Package backoff provides the delay strategies used between retry attempts.
// It supports constant, linear, exponential and capped backoff.
package backoff

import (
	"math"
	"time"
)

// Backoff defines the interface for backoff strategies.
// The Next method returns the duration to wait before the next retry attempt.
type Backoff interface {
	// Next returns the duration to wait before the next retry attempt.
	// count is the number of retries already made, starting at 0.
	Next(count int64) time.Duration
}

// Func adapts a plain function to Backoff.
type Func func(count int64) time.Duration

func (f Func) Next(count int64) time.Duration { return f(count) }

// Constant waits dur before every retry.
func Constant(dur time.Duration) Backoff {
	return constantBackoff{duration: dur}
}

// Exponential waits base * exp^count.
func Exponential(base time.Duration, exp float64) Backoff {
	return exponentialBackoff{base: base, exponent: exp}
}

// Linear waits base + step*count.
func Linear(base, step time.Duration) Backoff {
	return linearBackoff{base: base, step: step}
}

// Capped limits the delays of b to max.
func Capped(b Backoff, max time.Duration) Backoff {
	return cappedBackoff{inner: b, max: max}
}

type constantBackoff struct {
	duration time.Duration
}

func (b constantBackoff) Next(int64) time.Duration {
	return b.duration
}

type exponentialBackoff struct {
	base     time.Duration
	exponent float64
}

func (b exponentialBackoff) Next(count int64) time.Duration {
	d := float64(b.base) * math.Pow(b.exponent, float64(count))
	if d >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

type linearBackoff struct {
	base time.Duration
	step time.Duration
}

func (b linearBackoff) Next(count int64) time.Duration {
	return b.base + time.Duration(count)*b.step
}

type cappedBackoff struct {
	inner Backoff
	max   time.Duration
}

func (b cappedBackoff) Next(count int64) time.Duration {
	return min(b.inner.Next(count), b.max)
}
