package generator

import (
	"fmt"
	"math/rand"

	"ltlcheck/coalgebra"
)

// Generate produces one execution of the system under the provided policy,
// starting from the initial state.
//
// Configuration errors in the policy are reported before any transition is
// attempted. A disabled action is never an error: scripted runs truncate,
// random runs skip.
func Generate[S, A any](sys coalgebra.System[S, A], initial S, p Policy[A]) (coalgebra.Execution[S, A], error) {
	switch p := p.(type) {
	case Scripted[A]:
		return generateScripted(sys, initial, p), nil
	case Random[A]:
		if err := p.validate(); err != nil {
			return coalgebra.Execution[S, A]{}, err
		}
		return generateRandom(sys, initial, p), nil
	}
	return coalgebra.Execution[S, A]{}, fmt.Errorf("generator: unknown policy %T", p)
}

func generateScripted[S, A any](sys coalgebra.System[S, A], initial S, p Scripted[A]) coalgebra.Execution[S, A] {
	exec := coalgebra.Execution[S, A]{Initial: initial}
	current := initial
	for _, a := range p.Actions {
		next, ok := sys.Apply(current, a)
		if !ok {
			exec.Aborted = true
			break
		}
		exec.Steps = append(exec.Steps, coalgebra.Step[S, A]{Action: a, State: next})
		current = next
	}
	return exec
}

func generateRandom[S, A any](sys coalgebra.System[S, A], initial S, p Random[A]) coalgebra.Execution[S, A] {
	rng := rand.New(rand.NewSource(p.Seed))
	totalWeight := 0
	for _, c := range p.Choices {
		totalWeight += c.Weight
	}

	exec := coalgebra.Execution[S, A]{Initial: initial}
	current := initial
	for i := 0; i < p.MaxActions; i++ {
		a := pick(rng, p.Choices, totalWeight).Sample(rng)
		next, ok := sys.Apply(current, a)
		if !ok {
			// Disabled sample. Skipped, but it consumed one unit of the
			// action budget.
			continue
		}
		exec.Steps = append(exec.Steps, coalgebra.Step[S, A]{Action: a, State: next})
		current = next
	}
	return exec
}

// pick draws one choice proportionally to its weight.
func pick[A any](rng *rand.Rand, choices []Choice[A], totalWeight int) Choice[A] {
	n := rng.Intn(totalWeight)
	for _, c := range choices {
		n -= c.Weight
		if n < 0 {
			return c
		}
	}
	// Weights are validated positive and sum to totalWeight.
	return choices[len(choices)-1]
}
