// Package checking evaluates invariants and temporal formulas over
// executions and reports the first violation found.
//
// Violations are results, not errors: a broken invariant is the useful
// outcome of a verification run, reported with enough context to reproduce
// it deterministically.
package checking

// A Violation pinpoints the first state of an execution at which a property
// failed.
type Violation[S, A any] struct {
	// Index is the state index within the execution, counting the initial
	// state as index 0.
	Index int
	// State is the offending state.
	State S
	// PriorAction is the action that produced the offending state.
	// nil when the initial state itself violates the property.
	PriorAction *A
}

// A Result is the verdict for a single execution.
type Result[S, A any] struct {
	// TraceLength is the number of states that were checked. Verdicts are
	// bounded-trace verdicts; this is the bound.
	TraceLength int
	// AllValid is true if the property held at every checked index.
	AllValid bool
	// Violation describes the first failure. nil if AllValid.
	Violation *Violation[S, A]
}
