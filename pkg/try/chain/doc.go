// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of Result values that share one error kind.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then: compose result-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or: fall back to an alternative chain
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal when several safe calls against the same toolkit read
// better as a pipeline than as repeated branching.
package chain
