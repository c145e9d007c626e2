package checking

import (
	"ltlcheck/coalgebra"
	"ltlcheck/invariant"
)

// A small counter system used when testing. Decrement is disabled at zero,
// except in the broken variant where it is wrongly left enabled.
type testAction int

const (
	inc testAction = iota
	dec
	reset
)

func (a testAction) String() string {
	switch a {
	case inc:
		return "inc"
	case dec:
		return "dec"
	case reset:
		return "reset"
	}
	return "unknown"
}

func newCounterSystem() coalgebra.System[int, testAction] {
	return coalgebra.New(func(s int, a testAction) (int, bool) {
		switch a {
		case inc:
			return s + 1, true
		case dec:
			if s == 0 {
				return s, false
			}
			return s - 1, true
		case reset:
			return 0, true
		}
		return s, false
	})
}

func newBrokenCounterSystem() coalgebra.System[int, testAction] {
	return coalgebra.New(func(s int, a testAction) (int, bool) {
		switch a {
		case inc:
			return s + 1, true
		case dec:
			return s - 1, true
		case reset:
			return 0, true
		}
		return s, false
	})
}

func nonNegative() invariant.Invariant[int] {
	return invariant.New("count >= 0", func(s int) bool { return s >= 0 })
}

// mustGenerate builds an execution from a script by applying the system
// directly, so checking tests do not depend on the generator package.
func mustGenerate(sys coalgebra.System[int, testAction], initial int, actions []testAction) coalgebra.Execution[int, testAction] {
	exec := coalgebra.Execution[int, testAction]{Initial: initial}
	current := initial
	for _, a := range actions {
		next, ok := sys.Apply(current, a)
		if !ok {
			exec.Aborted = true
			break
		}
		exec.Steps = append(exec.Steps, coalgebra.Step[int, testAction]{Action: a, State: next})
		current = next
	}
	return exec
}
