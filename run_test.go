package ltlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltlcheck/checking"
	"ltlcheck/examples/counter"
	"ltlcheck/formula"
	"ltlcheck/generator"
)

func randomPolicy(seed int64) generator.Random[counter.Action] {
	return generator.Random[counter.Action]{
		Choices:    counter.Choices(),
		MaxActions: 50,
		Seed:       seed,
	}
}

func TestRunSoundInvariantAlwaysPasses(t *testing.T) {
	summary, err := Run(counter.System(), counter.State{}, randomPolicy(1),
		Trials(200),
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)

	assert.Equal(t, 200, summary.TotalTrials)
	assert.Equal(t, 200, summary.Passed)
	assert.Equal(t, 0, summary.Failed)
	assert.True(t, summary.AllPassed())
	assert.Nil(t, summary.FirstCounterexample)
}

func TestRunFindsInjectedBug(t *testing.T) {
	summary, err := Run(counter.BrokenSystem(), counter.State{}, randomPolicy(1),
		Trials(100),
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)

	require.False(t, summary.AllPassed(), "a wrongly enabled decrement at zero must be found")
	ce := summary.FirstCounterexample
	require.NotNil(t, ce)
	assert.Equal(t, "count >= 0", ce.Property)
	assert.Negative(t, ce.Result.Violation.State.Count)
	require.NotNil(t, ce.Result.Violation.PriorAction)
	assert.Equal(t, counter.Decrement, *ce.Result.Violation.PriorAction)
}

func TestCounterexampleReplays(t *testing.T) {
	summary, err := Run(counter.BrokenSystem(), counter.State{}, randomPolicy(1),
		Trials(100),
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)
	require.NotNil(t, summary.FirstCounterexample)

	// Replaying the exported action script as a scripted policy must
	// reproduce the violation at the same index.
	replay, err := Run(counter.BrokenSystem(), counter.State{},
		generator.Scripted[counter.Action]{Actions: summary.FirstCounterexample.Export()},
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)

	require.False(t, replay.AllPassed())
	assert.Equal(t, summary.FirstCounterexample.Result.Violation.Index, replay.FirstCounterexample.Result.Violation.Index)
	assert.Equal(t, summary.FirstCounterexample.Result.Violation.State, replay.FirstCounterexample.Result.Violation.State)
}

func TestRunDeterminism(t *testing.T) {
	run := func() checking.Summary[counter.State, counter.Action] {
		summary, err := Run(counter.BrokenSystem(), counter.State{}, randomPolicy(7),
			Trials(50),
			WithInvariants(counter.NonNegative()),
		)
		require.NoError(t, err)
		return summary
	}

	first := run()
	second := run()

	assert.Equal(t, first.Passed, second.Passed)
	assert.Equal(t, first.Failed, second.Failed)
	require.NotNil(t, first.FirstCounterexample)
	require.NotNil(t, second.FirstCounterexample)
	assert.Equal(t, first.FirstCounterexample.Trial, second.FirstCounterexample.Trial)
	assert.Equal(t, first.FirstCounterexample.Seed, second.FirstCounterexample.Seed)
	assert.Equal(t, first.FirstCounterexample.Actions, second.FirstCounterexample.Actions)
}

func TestRunScriptedIsSingleTrial(t *testing.T) {
	summary, err := Run(counter.System(), counter.State{},
		generator.Scripted[counter.Action]{Actions: []counter.Action{counter.Increment, counter.Increment, counter.Reset, counter.Increment}},
		Trials(500), // ignored for scripted policies
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTrials)
	assert.True(t, summary.AllPassed())
}

func TestRunWithFormulas(t *testing.T) {
	neverAboveBudget := formula.Atom[counter.State]{
		Name: "count within budget",
		Pred: func(s counter.State) bool { return s.Count <= 50 },
	}

	summary, err := Run(counter.System(), counter.State{}, randomPolicy(3),
		Trials(50),
		WithFormulas[counter.State](neverAboveBudget),
	)
	require.NoError(t, err)
	assert.True(t, summary.AllPassed())

	impossible := formula.Bottom[counter.State]{}
	summary, err = Run(counter.System(), counter.State{}, randomPolicy(3),
		Trials(10),
		WithFormulas[counter.State](impossible),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Failed)
	require.NotNil(t, summary.FirstCounterexample)
	assert.Equal(t, 0, summary.FirstCounterexample.Trial)
	assert.Equal(t, "false", summary.FirstCounterexample.Property)
}

func TestRunConfigurationErrors(t *testing.T) {
	_, err := Run(counter.System(), counter.State{}, randomPolicy(1))
	assert.ErrorContains(t, err, "at least one invariant or formula")

	_, err = Run(counter.System(), counter.State{}, randomPolicy(1),
		Trials(0),
		WithInvariants(counter.NonNegative()),
	)
	assert.ErrorContains(t, err, "trials must be positive")

	_, err = Run(counter.System(), counter.State{},
		generator.Random[counter.Action]{MaxActions: 10},
		WithInvariants(counter.NonNegative()),
	)
	assert.ErrorIs(t, err, generator.ErrNoChoices)
}

func TestRunConcurrent(t *testing.T) {
	summary, err := Run(counter.System(), counter.State{}, randomPolicy(5),
		Trials(100),
		NumConcurrent(8),
		WithInvariants(counter.NonNegative()),
	)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.TotalTrials)
	assert.Equal(t, 100, summary.Passed)
}
