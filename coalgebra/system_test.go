package coalgebra

import "testing"

func TestApply(t *testing.T) {
	sys := newCounterSystem()

	next, ok := sys.Apply(0, inc)
	if !ok {
		t.Errorf("Expected increment to be enabled at 0")
	}
	if next != 1 {
		t.Errorf("Expected increment to produce 1. Got: %v", next)
	}

	_, ok = sys.Apply(0, dec)
	if ok {
		t.Errorf("Expected decrement to be disabled at 0")
	}
}

func TestEnabled(t *testing.T) {
	sys := newCounterSystem()

	if sys.Enabled(0, dec) {
		t.Errorf("Expected decrement to be disabled at 0")
	}
	if !sys.Enabled(1, dec) {
		t.Errorf("Expected decrement to be enabled at 1")
	}
	if !sys.Enabled(0, reset) {
		t.Errorf("Expected reset to be enabled at 0")
	}
}
