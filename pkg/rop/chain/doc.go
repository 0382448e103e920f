// Package chain provides a fluent wrapper around Result[T]
// for building Railway-Oriented chains using solo combinators.
//
// It composes functions like FlatMap, Map, Try, Tap, Recover and Match behind
// a convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/Execute: begin a chain from a Result[T], a value or a wrapped callable
// - Then/ThenExecute: switch to a new Result[U] via a function or a wrapped callable
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Filter, Recover, OrElse, MapErr: branch-specific rewrites
// - Ensure/EnsureErr: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
