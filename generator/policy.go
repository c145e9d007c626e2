// Package generator produces executions of an action system, either by
// replaying a fixed action script or by sampling actions from a weighted
// distribution.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
)

// A Policy describes how the actions of an execution are chosen.
//
// The set of policies is sealed: Scripted and Random are the only
// implementations.
type Policy[A any] interface {
	policy()
}

// Scripted replays a fixed action sequence.
//
// Deterministic; used for regression tests, documentation examples and for
// reproducing exported counterexamples. If an action of the script is
// disabled the execution is truncated at that point and marked aborted. The
// remainder of the script is not attempted.
type Scripted[A any] struct {
	Actions []A
}

func (Scripted[A]) policy() {}

// A Choice is one weighted action shape of a random policy.
type Choice[A any] struct {
	// Weight is the relative frequency of this choice. Must be positive.
	Weight int
	// Sample draws one concrete action. It must use only the provided
	// source of randomness so that runs are reproducible from the seed.
	Sample func(r *rand.Rand) A
}

// Random samples actions from a weighted distribution over action shapes.
//
// Each trial draws up to MaxActions samples. A sample whose action is
// disabled in the current state is skipped, and the skipped sample still
// counts against MaxActions. This keeps every trial bounded even in a state
// where most or all actions are disabled; the price is that executions may
// contain fewer than MaxActions steps.
//
// Runs are reproducible: the same system, initial state, policy and seed
// produce an identical execution.
type Random[A any] struct {
	Choices    []Choice[A]
	MaxActions int
	Seed       int64
}

func (Random[A]) policy() {}

// Configuration errors, reported before any trial runs. This is the only
// class of condition that aborts a run instead of producing a result.
var (
	ErrNoChoices     = errors.New("generator: random policy needs at least one choice")
	ErrBadWeight     = errors.New("generator: choice weights must be positive")
	ErrNilSample     = errors.New("generator: choice sample function is nil")
	ErrBadMaxActions = errors.New("generator: maxActions must be positive")
)

// Validate eagerly checks a policy for configuration errors.
func Validate[A any](p Policy[A]) error {
	switch p := p.(type) {
	case Scripted[A]:
		return nil
	case Random[A]:
		return p.validate()
	}
	return fmt.Errorf("generator: unknown policy %T", p)
}

func (p Random[A]) validate() error {
	if len(p.Choices) == 0 {
		return ErrNoChoices
	}
	for i, c := range p.Choices {
		if c.Weight <= 0 {
			return fmt.Errorf("%w: choice %d has weight %d", ErrBadWeight, i, c.Weight)
		}
		if c.Sample == nil {
			return fmt.Errorf("%w: choice %d", ErrNilSample, i)
		}
	}
	if p.MaxActions <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxActions, p.MaxActions)
	}
	return nil
}
