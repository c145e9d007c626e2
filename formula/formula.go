// Package formula defines a linear temporal logic over application states
// and its satisfaction relation on trace prefixes.
//
// The formula algebra is closed: every formula is built from the variants
// declared in this package, and the evaluator handles each of them
// exhaustively. Two formulas are semantically equivalent if they agree on
// Satisfies for every trace; the package documents this notion but never
// computes it.
package formula

import "fmt"

// A Formula is a temporal logic formula over states of type S.
//
// The set of implementations is sealed by an unexported marker method.
// Formulas are immutable: build them once and evaluate them as often as
// needed, including from multiple goroutines.
type Formula[S any] interface {
	fmt.Stringer

	// Marker restricting implementations to this package.
	formula()
}

// Atom holds when the predicate holds on the first state of the trace.
type Atom[S any] struct {
	// Name identifies the predicate in reports. Optional.
	Name string
	Pred func(S) bool
}

// Top is the formula that holds on every trace.
type Top[S any] struct{}

// Bottom is the formula that holds on no trace.
type Bottom[S any] struct{}

// Not holds when F does not.
type Not[S any] struct {
	F Formula[S]
}

// And holds when both operands hold.
type And[S any] struct {
	Left, Right Formula[S]
}

// Or holds when at least one operand holds.
type Or[S any] struct {
	Left, Right Formula[S]
}

// Implies holds unless Left holds and Right does not.
type Implies[S any] struct {
	Left, Right Formula[S]
}

// Next holds when F holds on the trace starting at index 1.
type Next[S any] struct {
	F Formula[S]
}

// Always holds when F holds on every suffix of the trace.
type Always[S any] struct {
	F Formula[S]
}

// Eventually holds when F holds on some suffix of the trace.
type Eventually[S any] struct {
	F Formula[S]
}

// Until holds when Right holds on some suffix and Left holds on every
// earlier suffix.
type Until[S any] struct {
	Left, Right Formula[S]
}

// Action holds when the relation holds on the first transition of the
// trace, i.e. on the pair (state 0, state 1).
type Action[S any] struct {
	// Name identifies the relation in reports. Optional.
	Name string
	Rel  func(from, to S) bool
}

func (Atom[S]) formula()       {}
func (Top[S]) formula()        {}
func (Bottom[S]) formula()     {}
func (Not[S]) formula()        {}
func (And[S]) formula()        {}
func (Or[S]) formula()         {}
func (Implies[S]) formula()    {}
func (Next[S]) formula()       {}
func (Always[S]) formula()     {}
func (Eventually[S]) formula() {}
func (Until[S]) formula()      {}
func (Action[S]) formula()     {}

func (a Atom[S]) String() string {
	if a.Name == "" {
		return "atom"
	}
	return a.Name
}

func (Top[S]) String() string {
	return "true"
}

func (Bottom[S]) String() string {
	return "false"
}

func (n Not[S]) String() string {
	return fmt.Sprintf("¬%s", n.F)
}

func (a And[S]) String() string {
	return fmt.Sprintf("(%s ∧ %s)", a.Left, a.Right)
}

func (o Or[S]) String() string {
	return fmt.Sprintf("(%s ∨ %s)", o.Left, o.Right)
}

func (i Implies[S]) String() string {
	return fmt.Sprintf("(%s → %s)", i.Left, i.Right)
}

func (n Next[S]) String() string {
	return fmt.Sprintf("X %s", n.F)
}

func (a Always[S]) String() string {
	return fmt.Sprintf("G %s", a.F)
}

func (e Eventually[S]) String() string {
	return fmt.Sprintf("F %s", e.F)
}

func (u Until[S]) String() string {
	return fmt.Sprintf("(%s U %s)", u.Left, u.Right)
}

func (a Action[S]) String() string {
	if a.Name == "" {
		return "action"
	}
	return a.Name
}
