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
	"ltlcheck/journal"
)

var entryID int64

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded counterexample as a scripted trial",
	Run: func(cmd *cobra.Command, args []string) {
		j, err := openJournal()
		if err != nil {
			logger.Fatal("Failed to open journal", zap.Error(err))
		}
		defer j.Close()

		entry, err := j.Get(entryID)
		if err != nil {
			logger.Fatal("Failed to load journal entry", zap.Int64("id", entryID), zap.Error(err))
		}

		var reproduced bool
		switch entry.Domain {
		case "counter":
			reproduced = replayDomain(entry, counter.System(), counter.State{}, []invariant.Invariant[counter.State]{counter.NonNegative()})
		case "counter-broken":
			reproduced = replayDomain(entry, counter.BrokenSystem(), counter.State{}, []invariant.Invariant[counter.State]{counter.NonNegative()})
		case "todo":
			initial, err := todo.NewInitial(todo.FilterNone, nil)
			if err != nil {
				logger.Fatal("Failed to build initial state", zap.Error(err))
			}
			reproduced = replayDomain(entry, todo.System(), initial, todo.Invariants())
		default:
			logger.Fatal("Journal entry references an unknown domain", zap.String("domain", entry.Domain))
		}

		if reproduced {
			os.Exit(1)
		}
	},
}

func init() {
	replayCmd.Flags().Int64Var(&entryID, "id", 0, "journal entry to replay")
	replayCmd.MarkFlagRequired("id")
}

// replayDomain re-runs the recorded action script against the domain.
// Returns true if the violation is reproduced.
func replayDomain[S, A any](entry journal.Entry, sys coalgebra.System[S, A], initial S, invs []invariant.Invariant[S]) bool {
	var actions []A
	if err := json.Unmarshal([]byte(entry.Actions), &actions); err != nil {
		logger.Fatal("Failed to decode recorded action history", zap.Error(err))
	}

	summary, err := ltlcheck.Run(sys, initial, generator.Scripted[A]{Actions: actions}, ltlcheck.WithInvariants(invs...))
	if err != nil {
		logger.Fatal("Replay run failed", zap.Error(err))
	}

	ok, desc := summary.Response()
	fmt.Println(desc)
	if ok {
		fmt.Printf("Journal entry %v no longer violates %q\n", entry.ID, entry.Property)
		return false
	}
	fmt.Printf("Journal entry %v reproduced\n", entry.ID)
	return true
}

func openJournal() (*journal.Journal, error) {
	if journalPath == "" {
		return nil, fmt.Errorf("no journal configured, pass --journal")
	}
	return journal.Open(journalPath)
}

func journalEntry(domain, property string, seed int64, trial, index int, actions, state string) journal.Entry {
	return journal.Entry{
		Domain:         domain,
		Property:       property,
		Seed:           seed,
		MaxActions:     maxActions,
		Trial:          trial,
		ViolationIndex: index,
		Actions:        actions,
		State:          state,
	}
}
