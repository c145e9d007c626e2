package formula

import (
	"fmt"

	"ltlcheck/trace"
)

// Satisfies reports whether the trace prefix satisfies the formula.
//
// The semantics are structural and bounded by the materialized prefix:
//
//   - Atom(p) holds when p holds on the head of the trace.
//   - Next(f) holds when f holds on the tail; at the last state of the
//     prefix there is no successor within the bound, so Next is false there.
//   - Always(f) holds when f holds on every suffix of the prefix.
//   - Eventually(f) holds when f holds on some suffix of the prefix.
//   - Until(f, g) holds when g holds on some suffix and f holds on every
//     earlier suffix.
//   - Action(r) holds when r relates the first two states of the prefix;
//     like Next it is false at the last state.
//
// Callers that need the bound made explicit should report the trace length
// next to the verdict, as the checking package does.
func Satisfies[S any](t trace.Trace[S], f Formula[S]) bool {
	switch f := f.(type) {
	case Top[S]:
		return true
	case Bottom[S]:
		return false
	case Atom[S]:
		return t.Len() > 0 && f.Pred(t.Head())
	case Not[S]:
		return !Satisfies(t, f.F)
	case And[S]:
		return Satisfies(t, f.Left) && Satisfies(t, f.Right)
	case Or[S]:
		return Satisfies(t, f.Left) || Satisfies(t, f.Right)
	case Implies[S]:
		return !Satisfies(t, f.Left) || Satisfies(t, f.Right)
	case Next[S]:
		return t.Len() > 1 && Satisfies(t.Tail(), f.F)
	case Always[S]:
		for i := 0; i < t.Len(); i++ {
			if !Satisfies(t.Suffix(i), f.F) {
				return false
			}
		}
		return true
	case Eventually[S]:
		for i := 0; i < t.Len(); i++ {
			if Satisfies(t.Suffix(i), f.F) {
				return true
			}
		}
		return false
	case Until[S]:
		for j := 0; j < t.Len(); j++ {
			if Satisfies(t.Suffix(j), f.Right) {
				return true
			}
			if !Satisfies(t.Suffix(j), f.Left) {
				return false
			}
		}
		return false
	case Action[S]:
		return t.Len() > 1 && f.Rel(t.At(0), t.At(1))
	}
	// The formula type is sealed, so this is unreachable for formulas built
	// from this package.
	panic(fmt.Sprintf("formula: unknown formula %T", f))
}
