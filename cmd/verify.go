package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ltlcheck"
	"ltlcheck/coalgebra"
	"ltlcheck/examples/counter"
	"ltlcheck/examples/todo"
	"ltlcheck/generator"
	"ltlcheck/invariant"
)

var (
	domainName string
	trials     int
	maxActions int
	seed       int64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run randomized verification trials against a built-in domain",
	Run: func(cmd *cobra.Command, args []string) {
		var ok bool
		switch domainName {
		case "counter":
			ok = verifyDomain(domainName, counter.System(), counter.State{}, counter.Choices(), []invariant.Invariant[counter.State]{counter.NonNegative()})
		case "counter-broken":
			ok = verifyDomain(domainName, counter.BrokenSystem(), counter.State{}, counter.Choices(), []invariant.Invariant[counter.State]{counter.NonNegative()})
		case "todo":
			initial, err := todo.NewInitial(todo.FilterNone, nil)
			if err != nil {
				logger.Fatal("Failed to build initial state", zap.Error(err))
			}
			ok = verifyDomain(domainName, todo.System(), initial, todo.Choices(), todo.Invariants())
		default:
			logger.Fatal("Unknown domain", zap.String("domain", domainName))
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVar(&domainName, "domain", "todo", "domain to verify: todo, counter or counter-broken")
	verifyCmd.Flags().IntVar(&trials, "trials", 1000, "number of independent trials")
	verifyCmd.Flags().IntVar(&maxActions, "max-actions", 100, "action budget per trial")
	verifyCmd.Flags().Int64Var(&seed, "seed", 1, "base seed; trial i uses seed+i")
}

// verifyDomain runs randomized trials of one domain and reports the verdict.
// Returns true if all trials passed.
func verifyDomain[S, A any](domain string, sys coalgebra.System[S, A], initial S, choices []generator.Choice[A], invs []invariant.Invariant[S]) bool {
	pol := generator.Random[A]{
		Choices:    choices,
		MaxActions: maxActions,
		Seed:       seed,
	}

	summary, err := ltlcheck.Run(sys, initial, pol, ltlcheck.Trials(trials), ltlcheck.WithInvariants(invs...))
	if err != nil {
		logger.Fatal("Verification run failed", zap.Error(err))
	}

	ok, desc := summary.Response()
	fmt.Println(desc)

	if !ok && journalPath != "" {
		recordCounterexample(domain, summary.FirstCounterexample.Seed, summary.FirstCounterexample.Trial,
			summary.FirstCounterexample.Property, summary.FirstCounterexample.Export(),
			summary.FirstCounterexample.Result.Violation.State, summary.FirstCounterexample.Result.Violation.Index)
	}
	return ok
}

func recordCounterexample[S, A any](domain string, trialSeed int64, trial int, property string, actions []A, state S, index int) {
	j, err := openJournal()
	if err != nil {
		logger.Error("Failed to open journal", zap.Error(err))
		return
	}
	defer j.Close()

	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		logger.Error("Failed to serialize action history", zap.Error(err))
		return
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		logger.Error("Failed to serialize violating state", zap.Error(err))
		return
	}

	id, err := j.Record(journalEntry(domain, property, trialSeed, trial, index, string(actionsJSON), string(stateJSON)))
	if err != nil {
		logger.Error("Failed to record counterexample", zap.Error(err))
		return
	}
	fmt.Printf("Counterexample recorded as journal entry %v\n", id)
}
