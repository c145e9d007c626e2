package coalgebra

// Pair is the product state of two composed action systems.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Either is a disjoint union over the action types of two composed systems.
//
// Construct values with LeftAction or RightAction.
type Either[A, B any] struct {
	left   A
	right  B
	isLeft bool
}

// LeftAction wraps an action of the left system.
func LeftAction[A, B any](a A) Either[A, B] {
	return Either[A, B]{left: a, isLeft: true}
}

// RightAction wraps an action of the right system.
func RightAction[A, B any](b B) Either[A, B] {
	return Either[A, B]{right: b}
}

// Left returns the wrapped left action and whether this is a left action.
func (e Either[A, B]) Left() (A, bool) {
	return e.left, e.isLeft
}

// Right returns the wrapped right action and whether this is a right action.
func (e Either[A, B]) Right() (B, bool) {
	return e.right, !e.isLeft
}

// Parallel builds the interleaving composition of two action systems over
// disjoint action types.
//
// Each action is routed to the side whose type it carries; the other side's
// state is left untouched. The composite action is enabled exactly when it
// is enabled on its own side. Properties verified on each side separately
// carry over to the composition without new per-side work.
func Parallel[SL, SR, AL, AR any](left System[SL, AL], right System[SR, AR]) System[Pair[SL, SR], Either[AL, AR]] {
	return New(func(s Pair[SL, SR], a Either[AL, AR]) (Pair[SL, SR], bool) {
		if al, ok := a.Left(); ok {
			next, enabled := left.Apply(s.Left, al)
			if !enabled {
				return s, false
			}
			return Pair[SL, SR]{Left: next, Right: s.Right}, true
		}
		ar, _ := a.Right()
		next, enabled := right.Apply(s.Right, ar)
		if !enabled {
			return s, false
		}
		return Pair[SL, SR]{Left: s.Left, Right: next}, true
	})
}
