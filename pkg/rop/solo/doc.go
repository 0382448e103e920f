// Package solo contains single-value ROP combinators that operate on
// Result[T]. Every combinator is total: a panic raised by a supplied
// callback is recovered and normalized into a failure instead of escaping.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/Try/MapWith/FlatMap: transform successes; failures pass through untouched
// - MapErr/Recover/OrElse: work on the failure branch
// - Filter/Validate/AndValidate/ValidateAll: downgrade rejected successes
// - Tap/TapErr: side effects whose panics are logged and dropped
// - Partition/Collect: gather many results, Collect aggregates failures
// - Match: reduce to a concrete value via success/failure handlers
package solo
