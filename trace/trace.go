package trace

import "golang.org/x/exp/slices"

// A Trace is a finite, materialized prefix of a conceptually infinite
// sequence of states.
//
// Temporal formulas are evaluated over the available prefix only. This is
// bounded-trace semantics: quantifiers such as "always" and "eventually"
// range over the indexes of the prefix, and the length of the prefix is the
// bound. The bound is reported alongside every verification result so that a
// verdict can never be mistaken for a statement about the full infinite trace.
type Trace[S any] struct {
	states []S
}

// From creates a trace from the provided states.
func From[S any](states ...S) Trace[S] {
	return Trace[S]{states: states}
}

// Len returns the number of states in the materialized prefix.
func (t Trace[S]) Len() int {
	return len(t.states)
}

// At returns the state at index i.
func (t Trace[S]) At(i int) S {
	return t.states[i]
}

// Head returns the state at index 0.
func (t Trace[S]) Head() S {
	return t.states[0]
}

// Suffix returns the trace starting at index i.
//
// The suffix shares the underlying prefix with the original trace.
// A suffix starting at or beyond the end of the prefix is empty.
func (t Trace[S]) Suffix(i int) Trace[S] {
	if i >= len(t.states) {
		return Trace[S]{}
	}
	return Trace[S]{states: t.states[i:]}
}

// Tail returns the trace starting at index 1.
func (t Trace[S]) Tail() Trace[S] {
	return t.Suffix(1)
}

// States returns a copy of the states in the materialized prefix.
func (t Trace[S]) States() []S {
	return slices.Clone(t.states)
}
