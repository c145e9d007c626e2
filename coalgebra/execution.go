package coalgebra

import "ltlcheck/trace"

// A Step records one transition of an execution: the action taken and the
// state it produced.
type Step[S, A any] struct {
	Action A
	State  S
}

// An Execution is a finite run of an action system: an initial state
// followed by the steps taken from it.
//
// A well-formed execution satisfies, for every step i,
//
//	system.Apply(state_i, action_i) == (state_{i+1}, true)
//
// where state_0 is Initial. Generators uphold this by construction; Valid
// re-checks it for executions of unknown origin.
//
// An execution is owned by the generator that produced it until it is handed
// to a checker; it is never shared between trials.
type Execution[S, A any] struct {
	Initial S
	Steps   []Step[S, A]

	// Aborted is true if a scripted run was cut short by a disabled action.
	// An aborted execution is a shorter trial, not a failure.
	Aborted bool
}

// Len returns the number of states in the execution, including the initial
// state.
func (e Execution[S, A]) Len() int {
	return len(e.Steps) + 1
}

// States returns the state sequence of the execution, starting with the
// initial state.
func (e Execution[S, A]) States() []S {
	states := make([]S, 0, e.Len())
	states = append(states, e.Initial)
	for _, step := range e.Steps {
		states = append(states, step.State)
	}
	return states
}

// Actions returns the action sequence of the execution.
func (e Execution[S, A]) Actions() []A {
	actions := make([]A, 0, len(e.Steps))
	for _, step := range e.Steps {
		actions = append(actions, step.Action)
	}
	return actions
}

// Trace returns the state sequence as a trace for formula evaluation.
func (e Execution[S, A]) Trace() trace.Trace[S] {
	return trace.From(e.States()...)
}

// Valid reports whether every step of the execution is a transition of the
// provided system.
//
// State equality is owned by the domain and supplied as statesEqual.
func (e Execution[S, A]) Valid(sys System[S, A], statesEqual func(S, S) bool) bool {
	current := e.Initial
	for _, step := range e.Steps {
		next, ok := sys.Apply(current, step.Action)
		if !ok {
			return false
		}
		if !statesEqual(next, step.State) {
			return false
		}
		current = next
	}
	return true
}
