package generator

import (
	"math/rand"

	"ltlcheck/coalgebra"
)

// A small counter system used when testing. Decrement is disabled at zero.
type testAction int

const (
	inc testAction = iota
	dec
	reset
)

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

func counterChoices() []Choice[testAction] {
	return []Choice[testAction]{
		{Weight: 3, Sample: func(*rand.Rand) testAction { return inc }},
		{Weight: 2, Sample: func(*rand.Rand) testAction { return dec }},
		{Weight: 1, Sample: func(*rand.Rand) testAction { return reset }},
	}
}
