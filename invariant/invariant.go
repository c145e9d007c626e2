// Package invariant packages state predicates together with the inductive
// obligations that justify an "always" guarantee.
//
// An inductive invariant is established by two obligations: the predicate
// holds on the initial state, and every enabled transition preserves it. By
// induction on execution length the predicate then holds on every reachable
// state, which is exactly the temporal formula always(atom(P)).
//
// Outside a proof assistant these obligations are runtime-falsifiable, not
// statically guaranteed. HoldsInitially and PreservedBy evaluate them on
// concrete states and transitions, and the checking package evaluates the
// predicate on every state of every generated execution. Absence of a
// counterexample across N trials is evidence, not proof.
package invariant

import (
	"ltlcheck/coalgebra"
	"ltlcheck/formula"
)

// An Invariant is the claim that a predicate holds on every state reachable
// from a fixed initial state via the action system's transitions.
type Invariant[S any] struct {
	// Name identifies the invariant in reports.
	Name string
	// Predicate must be pure. Checkers evaluate it concurrently across
	// trials.
	Predicate func(S) bool
}

// New creates an invariant from a name and a predicate.
func New[S any](name string, pred func(S) bool) Invariant[S] {
	return Invariant[S]{Name: name, Predicate: pred}
}

// Holds evaluates the predicate on a single state.
func (inv Invariant[S]) Holds(s S) bool {
	return inv.Predicate(s)
}

// HoldsInitially evaluates the first inductive obligation: the predicate
// holds on the initial state.
func (inv Invariant[S]) HoldsInitially(initial S) bool {
	return inv.Holds(initial)
}

// Always derives the temporal formula claimed by the invariant,
// always(atom(P)). An execution whose trace satisfies the derived formula is
// one on which the invariant held at every index.
func (inv Invariant[S]) Always() formula.Formula[S] {
	return formula.Always[S]{F: formula.Atom[S]{Name: inv.Name, Pred: inv.Predicate}}
}

// PreservedBy spot-checks the second inductive obligation on a single
// transition: if the predicate holds in s and the action is enabled, the
// predicate must hold in the successor.
//
// The check is vacuously true when the predicate fails in s or the action is
// disabled. One call checks one transition; preservation across the whole
// reachable state space is only ever sampled, never proven.
func PreservedBy[S, A any](inv Invariant[S], sys coalgebra.System[S, A], s S, a A) bool {
	if !inv.Holds(s) {
		return true
	}
	next, ok := sys.Apply(s, a)
	if !ok {
		return true
	}
	return inv.Holds(next)
}
