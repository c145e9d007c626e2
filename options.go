package ltlcheck

import (
	"ltlcheck/formula"
	"ltlcheck/invariant"
)

// An Option configures a verification run.
type Option interface{}

type trialsOption struct{ n int }

// Trials configures the number of independent executions generated and
// checked.
//
// Default value is 1000. A scripted policy always runs exactly one trial,
// since every scripted trial is identical.
func Trials(n int) Option {
	return trialsOption{n: n}
}

type numConcurrentOption struct{ n int }

// NumConcurrent configures the number of trials that are executed
// concurrently.
//
// Default value is GOMAXPROCS.
func NumConcurrent(n int) Option {
	return numConcurrentOption{n: n}
}

type invariantOption[S any] struct {
	invs []invariant.Invariant[S]
}

// WithInvariants adds invariants to be checked on every state of every
// trial.
func WithInvariants[S any](invs ...invariant.Invariant[S]) Option {
	return invariantOption[S]{invs: invs}
}

type formulaOption[S any] struct {
	fs []formula.Formula[S]
}

// WithFormulas adds temporal formulas to be checked on every suffix of every
// trial.
func WithFormulas[S any](fs ...formula.Formula[S]) Option {
	return formulaOption[S]{fs: fs}
}
