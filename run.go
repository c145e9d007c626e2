// Package ltlcheck drives randomized and scripted verification of
// action-driven state machines against temporal properties.
//
// The engine generates executions of a domain's action system, evaluates
// invariants and LTL formulas on every state, and reports the first
// counterexample found. Trials are pure computations over immutable inputs;
// the transition function and the predicates must be side-effect-free, a
// required contract since it is what makes lock-free parallel trials and
// seed-based reproduction sound.
package ltlcheck

import (
	"fmt"
	"runtime"

	"ltlcheck/checking"
	"ltlcheck/coalgebra"
	"ltlcheck/formula"
	"ltlcheck/generator"
	"ltlcheck/invariant"
)

// Run executes independent verification trials of the system under the
// provided policy and aggregates the verdicts.
//
// Each trial generates a fresh execution from the initial state and checks
// every configured invariant and formula at every index, recording the first
// violation. All trials run to completion regardless of earlier failures so
// the aggregate pass rate is meaningful; the summary fails if any single
// trial fails.
//
// Trial i of a random policy uses seed policy.Seed+i, so any reported trial
// can be reproduced in isolation with a single-trial run.
//
// Configuration errors (malformed policy, no properties, non-positive
// budgets) are rejected before any trial runs. They are the only condition
// under which Run fails instead of producing a summary.
func Run[S, A any](sys coalgebra.System[S, A], initial S, pol generator.Policy[A], opts ...Option) (checking.Summary[S, A], error) {
	var (
		trials        = 1000
		numConcurrent = runtime.GOMAXPROCS(0)
		invs          []invariant.Invariant[S]
		formulas      []formula.Formula[S]
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case trialsOption:
			trials = t.n
		case numConcurrentOption:
			numConcurrent = t.n
		case invariantOption[S]:
			invs = append(invs, t.invs...)
		case formulaOption[S]:
			formulas = append(formulas, t.fs...)
		}
	}

	var zero checking.Summary[S, A]
	if trials < 1 {
		return zero, fmt.Errorf("ltlcheck: trials must be positive, got %v", trials)
	}
	if numConcurrent < 1 {
		return zero, fmt.Errorf("ltlcheck: numConcurrent must be positive, got %v", numConcurrent)
	}
	if len(invs)+len(formulas) == 0 {
		return zero, fmt.Errorf("ltlcheck: at least one invariant or formula must be provided")
	}
	if err := generator.Validate[A](pol); err != nil {
		return zero, err
	}

	// Every scripted trial is identical, so one is enough.
	if _, ok := pol.(generator.Scripted[A]); ok {
		trials = 1
	}
	if numConcurrent > trials {
		numConcurrent = trials
	}

	cfg := &runConfig[S, A]{
		sys:      sys,
		initial:  initial,
		pol:      pol,
		invs:     invs,
		formulas: formulas,
	}

	// Used to hand trial indexes to the workers. Closed to stop submission.
	nextTrial := make(chan int)
	// Used by workers to report one outcome per completed trial.
	status := make(chan trialOutcome[S, A])
	// Used by workers to signal that they have stopped and closed their
	// goroutine. The main loop stops when all workers have stopped.
	closing := make(chan bool)

	ongoing := 0
	startedTrials := 0
	for ongoing < numConcurrent {
		ongoing++
		go runTrials(cfg, nextTrial, status, closing)

		nextTrial <- startedTrials
		startedTrials++

		if startedTrials >= trials {
			break
		}
	}

	return mainLoop(trials, ongoing, startedTrials, nextTrial, status, closing)
}

// The per-run immutable configuration shared by all trial workers.
type runConfig[S, A any] struct {
	sys      coalgebra.System[S, A]
	initial  S
	pol      generator.Policy[A]
	invs     []invariant.Invariant[S]
	formulas []formula.Formula[S]
}

type trialOutcome[S, A any] struct {
	trial int
	seed  int64

	// property and result describe the first violated property of the
	// trial. passed is true if no property was violated.
	passed   bool
	property string
	actions  []A
	result   checking.Result[S, A]

	err error
}

// The main loop of a run.
//
// Receives one status update per completed trial, merges it into the
// summary, and hands out the next trial index until the budget is spent.
// Returns when all workers have stopped. Cancellation is coarse-grained:
// submission stops between trials, never mid-trial.
func mainLoop[S, A any](trials, ongoing, startedTrials int, nextTrial chan int, status chan trialOutcome[S, A], closing chan bool) (checking.Summary[S, A], error) {
	summary := checking.Summary[S, A]{TotalTrials: trials}
	var out error

	// Stop the run by closing the nextTrial channel if it is not already
	// closed.
	stopped := false
	stop := func() {
		if !stopped {
			stopped = true
			close(nextTrial)
		}
	}

	for ongoing > 0 {
		select {
		case outcome := <-status:
			if outcome.err != nil {
				if out == nil {
					out = outcome.err
				}
				stop()
				break
			}
			mergeOutcome(&summary, outcome)

			if stopped {
				break
			}
			if startedTrials < trials {
				nextTrial <- startedTrials
				startedTrials++
			} else {
				stop()
			}
		case <-closing:
			ongoing--
		}
	}

	stop()

	// All workers have stopped and will not send again.
	close(closing)
	close(status)

	if out != nil {
		return checking.Summary[S, A]{}, out
	}
	return summary, nil
}

// mergeOutcome folds one trial verdict into the summary.
//
// Trials complete in arbitrary order; the counterexample kept is the one
// with the lowest trial index so that the summary is deterministic for a
// fixed seed.
func mergeOutcome[S, A any](summary *checking.Summary[S, A], outcome trialOutcome[S, A]) {
	if outcome.passed {
		summary.Passed++
		return
	}
	summary.Failed++
	if summary.FirstCounterexample == nil || outcome.trial < summary.FirstCounterexample.Trial {
		summary.FirstCounterexample = &checking.Counterexample[S, A]{
			Trial:    outcome.trial,
			Seed:     outcome.seed,
			Property: outcome.property,
			Actions:  outcome.actions,
			Result:   outcome.result,
		}
	}
}

// runTrials is the worker loop.
//
// Continuously receives trial indexes from the nextTrial channel and runs
// one trial per index. Stops when the channel is closed and signals the stop
// on the closing channel.
func runTrials[S, A any](cfg *runConfig[S, A], nextTrial chan int, status chan trialOutcome[S, A], closing chan bool) {
	for trial := range nextTrial {
		status <- runTrial(cfg, trial)
	}
	closing <- true
}

// runTrial generates one execution and checks every configured property on
// it.
func runTrial[S, A any](cfg *runConfig[S, A], trial int) trialOutcome[S, A] {
	pol := cfg.pol
	var seed int64
	if rp, ok := pol.(generator.Random[A]); ok {
		rp.Seed += int64(trial)
		seed = rp.Seed
		pol = rp
	}

	outcome := trialOutcome[S, A]{trial: trial, seed: seed}

	exec, err := generator.Generate(cfg.sys, cfg.initial, pol)
	if err != nil {
		outcome.err = err
		return outcome
	}

	for _, inv := range cfg.invs {
		res := checking.VerifyInvariant(exec, inv)
		if !res.AllValid {
			outcome.property = inv.Name
			outcome.actions = exec.Actions()
			outcome.result = res
			return outcome
		}
	}
	for _, f := range cfg.formulas {
		res := checking.VerifyFormula(exec, f)
		if !res.AllValid {
			outcome.property = f.String()
			outcome.actions = exec.Actions()
			outcome.result = res
			return outcome
		}
	}

	outcome.passed = true
	return outcome
}
