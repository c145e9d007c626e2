// Package coalgebra models an application as an action system: a partial
// transition function from (state, action) to a successor state.
package coalgebra

// A Transition is the step function of an action system.
//
// The boolean result encodes partiality: ok is false exactly when the
// action's precondition fails in the given state. A disabled action is a
// first-class outcome, never an error.
//
// Transitions must be pure. The same (state, action) pair must always
// produce the same result and no observable side effects. Verification runs
// share a System across goroutines without locking, and a reported "no
// counterexample found" is only evidence if repeated runs explore the same
// system.
type Transition[S, A any] func(s S, a A) (S, bool)

// A System wraps a domain's transition function.
//
// A System is stateless and can be shared freely across concurrent
// verification runs.
type System[S, A any] struct {
	transition Transition[S, A]
}

// New creates an action system from the provided transition function.
func New[S, A any](t Transition[S, A]) System[S, A] {
	return System[S, A]{transition: t}
}

// Apply attempts the action in the given state.
//
// Returns the successor state and true if the action is enabled.
// Returns the zero-effect state and false if it is disabled.
func (sys System[S, A]) Apply(s S, a A) (S, bool) {
	return sys.transition(s, a)
}

// Enabled reports whether the action's precondition holds in the state.
func (sys System[S, A]) Enabled(s S, a A) bool {
	_, ok := sys.transition(s, a)
	return ok
}
