package tuner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/autotune/abort"
	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/parameter"
	"github.com/katalvlaran/autotune/tuner"
)

// TestProperty_HistoryOrderingAndEvaluationCounts is the history and
// counter invariants: timestamps are non-decreasing, improvement_history
// costs strictly decrease, and valid+invalid sums to the total evaluated.
func TestProperty_HistoryOrderingAndEvaluationCounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.Int64Range(1, 40).Draw(t, "size")
		budget := rapid.IntRange(1, int(size)).Draw(t, "budget")

		r, err := parameter.NewIntervalRange(1, size, 1)
		require.NoError(t, err)
		p, err := parameter.New("P", r, nil)
		require.NoError(t, err)

		tn, err := tuner.New([]parameter.Parameter{p}, tuner.WithSilent(true))
		require.NoError(t, err)

		costFn := func(cfg parameter.Configuration) (cost.Cost, error) {
			v := cfg["P"].Int()
			if v%3 == 0 {
				return 0, cost.ErrInvalidConfiguration
			}
			return cost.Cost(v), nil
		}

		err = tn.Tune(context.Background(), costFn, abort.NewEvaluations(budget))
		require.NoError(t, err)

		data := tn.Data()
		history := data.History()
		for i := 1; i < len(history); i++ {
			require.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
		}

		improvements := data.ImprovementHistory()
		for i := 1; i < len(improvements); i++ {
			require.Less(t, improvements[i].Cost, improvements[i-1].Cost)
		}

		require.Equal(t, data.EvaluatedConfigurations(), data.EvaluatedValid()+data.EvaluatedInvalid())
		require.LessOrEqual(t, len(history), budget)
	})
}

// TestProperty_EvaluationsTerminatesWithinBudget is the termination
// invariant for Evaluations(n): the loop never evaluates more than n
// distinct configurations.
func TestProperty_EvaluationsTerminatesWithinBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.Int64Range(1, 50).Draw(t, "size")
		n := rapid.IntRange(1, int(size)).Draw(t, "n")

		r, err := parameter.NewIntervalRange(1, size, 1)
		require.NoError(t, err)
		p, err := parameter.New("P", r, nil)
		require.NoError(t, err)

		tn, err := tuner.New([]parameter.Parameter{p}, tuner.WithSilent(true))
		require.NoError(t, err)

		costFn := func(cfg parameter.Configuration) (cost.Cost, error) {
			return cost.Cost(cfg["P"].Int()), nil
		}

		err = tn.Tune(context.Background(), costFn, abort.NewEvaluations(n))
		require.NoError(t, err)
		require.Equal(t, n, tn.Data().EvaluatedConfigurations())
	})
}
