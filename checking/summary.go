package checking

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"golang.org/x/exp/slices"

	"ltlcheck/coalgebra"
	"ltlcheck/invariant"
)

// A Counterexample ties a failing result back to the trial that produced it,
// with enough information to reproduce the failure deterministically.
type Counterexample[S, A any] struct {
	// Trial is the index of the failing trial within the run.
	Trial int
	// Seed is the per-trial seed of a randomized trial. Zero for scripted
	// trials.
	Seed int64
	// Property names the violated invariant or formula.
	Property string
	// Actions is the full action history of the failing execution.
	Actions []A
	// Result carries the violating index and state.
	Result Result[S, A]
}

// Export returns the action script that reproduces the counterexample when
// replayed as a scripted policy from the same initial state.
func (c Counterexample[S, A]) Export() []A {
	return slices.Clone(c.Actions)
}

// A Summary aggregates the verdicts of the independent trials of a run.
//
// A single failing trial fails the whole claim, matching the mathematical
// meaning of "always": one counterexample falsifies the invariant for the
// domain no matter how many trials passed.
type Summary[S, A any] struct {
	TotalTrials int
	Passed      int
	Failed      int
	// FirstCounterexample is the counterexample with the lowest trial
	// index. nil if every trial passed.
	FirstCounterexample *Counterexample[S, A]
}

// AllPassed reports whether no trial produced a violation.
func (s Summary[S, A]) AllPassed() bool {
	return s.Failed == 0
}

// Response generates a report of the run.
//
// Returns a boolean that is true if all trials passed, false otherwise, and
// a formatted description. On failure the description contains the violated
// property, the violating index and state, the trial seed and the action
// history leading to the violation.
func (s Summary[S, A]) Response() (bool, string) {
	if s.AllPassed() {
		return true, fmt.Sprintf("All %v trials passed", s.TotalTrials)
	}
	ce := s.FirstCounterexample
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 0, ' ', 0)
	fmt.Fprintf(wrt, "Property broken: %v. Trial: %v. Seed: %v.\n", ce.Property, ce.Trial, ce.Seed)
	fmt.Fprintf(wrt, "Violated at index %v of %v.\tState: %v\n", ce.Result.Violation.Index, ce.Result.TraceLength, ce.Result.Violation.State)
	if ce.Result.Violation.PriorAction != nil {
		fmt.Fprintf(wrt, "Action producing the state: %v\n", *ce.Result.Violation.PriorAction)
	}
	fmt.Fprintln(wrt, "Action history:")
	for _, a := range ce.Actions {
		fmt.Fprintf(wrt, "-> %v\n", a)
	}
	wrt.Flush()
	out := fmt.Sprintf("%v/%v trials failed. ", s.Failed, s.TotalTrials)
	out += buffer.String()
	return false, out
}

// Check verifies every execution against the invariant.
//
// Returns one result per execution, in order, plus the aggregate summary.
// Every execution is checked even after a violation is found, so that the
// aggregate pass rate is meaningful.
func Check[S, A any](execs []coalgebra.Execution[S, A], inv invariant.Invariant[S]) ([]Result[S, A], Summary[S, A]) {
	results := make([]Result[S, A], 0, len(execs))
	summary := Summary[S, A]{TotalTrials: len(execs)}
	for i, exec := range execs {
		res := VerifyInvariant(exec, inv)
		results = append(results, res)
		if res.AllValid {
			summary.Passed++
			continue
		}
		summary.Failed++
		if summary.FirstCounterexample == nil {
			summary.FirstCounterexample = &Counterexample[S, A]{
				Trial:    i,
				Property: inv.Name,
				Actions:  exec.Actions(),
				Result:   res,
			}
		}
	}
	return results, summary
}
