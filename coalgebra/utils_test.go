package coalgebra

// A small counter system used when testing. Decrement is disabled at zero.
type testAction int

const (
	inc testAction = iota
	dec
	reset
)

func newCounterSystem() System[int, testAction] {
	return New(func(s int, a testAction) (int, bool) {
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

func intsEqual(a, b int) bool {
	return a == b
}
