// Package tiny provides a minimal fluent Chain[T] for composition of
// Result[T] values that keep the same type.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry/To: compose result-returning, error-returning or wrapped functions
// - Map: transform the value
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: pick the first success, or the first failure
// - Ensure: trigger side effects on success or failure
// - Finally: reduce to a concrete value via handlers
package tiny
