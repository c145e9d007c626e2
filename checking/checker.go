package checking

import (
	"ltlcheck/coalgebra"
	"ltlcheck/formula"
	"ltlcheck/invariant"
)

// VerifyInvariant evaluates the invariant's predicate on every state of the
// execution, in order, and stops at the first violation.
func VerifyInvariant[S, A any](exec coalgebra.Execution[S, A], inv invariant.Invariant[S]) Result[S, A] {
	states := exec.States()
	actions := exec.Actions()
	for i, s := range states {
		if inv.Holds(s) {
			continue
		}
		return Result[S, A]{
			TraceLength: len(states),
			AllValid:    false,
			Violation:   newViolation(i, s, actions),
		}
	}
	return Result[S, A]{TraceLength: len(states), AllValid: true}
}

// VerifyFormula evaluates the formula on every suffix of the execution's
// trace, in order, and stops at the first index whose suffix does not
// satisfy it.
//
// Checking every suffix means a plain formula f is verified the way
// always(f) would be on the whole trace; a formula that should only be
// checked from the initial state can be wrapped by the caller.
func VerifyFormula[S, A any](exec coalgebra.Execution[S, A], f formula.Formula[S]) Result[S, A] {
	t := exec.Trace()
	actions := exec.Actions()
	for i := 0; i < t.Len(); i++ {
		if formula.Satisfies(t.Suffix(i), f) {
			continue
		}
		return Result[S, A]{
			TraceLength: t.Len(),
			AllValid:    false,
			Violation:   newViolation(i, t.At(i), actions),
		}
	}
	return Result[S, A]{TraceLength: t.Len(), AllValid: true}
}

func newViolation[S, A any](index int, s S, actions []A) *Violation[S, A] {
	v := &Violation[S, A]{Index: index, State: s}
	if index > 0 {
		a := actions[index-1]
		v.PriorAction = &a
	}
	return v
}
