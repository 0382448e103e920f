// Package compose builds new wrapped callables out of existing ones.
//
// The failure tag of a composed callable is the union (rop.Either) of the
// tags of its parts. The tag is compile-time bookkeeping only: at run time a
// composed callable returns whichever concrete error its failing part
// produced.
//
// - ComposeFns/ComposeSyncFns/ThenMap: run one callable, feed its value to the next
// - Sequence: ComposeFns folded over same-typed steps
// - Compose: apply wrappers (retry, timeout, logging...) around a base callable
// - Widen: add a failure type to a callable's tag
// - Pipe/PipeSync: execute two callables in a row without building a new one
package compose
