package parameter_test

import (
	"testing"

	"github.com/katalvlaran/autotune/parameter"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	r, err := parameter.IntSetRange(1, 2, 3)
	require.NoError(t, err)

	_, err = parameter.New("", r, nil)
	require.ErrorIs(t, err, parameter.ErrEmptyName)

	_, err = parameter.New("P", nil, nil)
	require.ErrorIs(t, err, parameter.ErrNilRange)

	empty, err := parameter.NewIntervalRange(5, 1, 1)
	require.ErrorIs(t, err, parameter.ErrEmptyRange)
	_ = empty
}

func TestIntervalRange_SizeAndAt(t *testing.T) {
	r, err := parameter.NewIntervalRange(1, 12, 1)
	require.NoError(t, err)
	require.EqualValues(t, 12, r.Size())
	require.Equal(t, int64(1), r.At(0).Int())
	require.Equal(t, int64(12), r.At(11).Int())

	stepped, err := parameter.NewIntervalRange(0, 10, 2)
	require.NoError(t, err)
	require.EqualValues(t, 6, stepped.Size())
	require.Equal(t, int64(10), stepped.At(5).Int())
}

func TestSetRange_RejectsMixedKinds(t *testing.T) {
	_, err := parameter.NewSetRange(parameter.IntValue(1), parameter.StringValue("x"))
	require.Error(t, err)
}

func TestValidate_OrderAndDependencies(t *testing.T) {
	n, err := parameter.IntSetRange(12)
	require.NoError(t, err)
	wptRange, err := parameter.NewIntervalRange(1, 12, 1)
	require.NoError(t, err)
	lsRange, err := parameter.NewIntervalRange(1, 12, 1)
	require.NoError(t, err)

	nParam, err := parameter.New("N", n, nil)
	require.NoError(t, err)

	wpt, err := parameter.New("WPT", wptRange, &parameter.Constraint{
		DependsOn: []string{"N"},
		Predicate: func(b map[string]parameter.Value) bool {
			return b["N"].Int()%b["WPT"].Int() == 0
		},
	})
	require.NoError(t, err)

	// LS depends on WPT, which is declared before it: valid order.
	ls, err := parameter.New("LS", lsRange, &parameter.Constraint{
		DependsOn: []string{"N", "WPT"},
		Predicate: func(b map[string]parameter.Value) bool {
			return (b["N"].Int()/b["WPT"].Int())%b["LS"].Int() == 0
		},
	})
	require.NoError(t, err)

	require.NoError(t, parameter.Validate([]parameter.Parameter{nParam, wpt, ls}))

	// Reversing LS and WPT makes WPT's dependency on N fine, but LS now
	// precedes WPT while depending on it: invalid order.
	require.ErrorIs(t, parameter.Validate([]parameter.Parameter{nParam, ls, wpt}), parameter.ErrUnknownDependency)
}

func TestValidate_DuplicateName(t *testing.T) {
	r, err := parameter.IntSetRange(1, 2)
	require.NoError(t, err)
	a, err := parameter.New("P", r, nil)
	require.NoError(t, err)
	b, err := parameter.New("P", r, nil)
	require.NoError(t, err)
	require.ErrorIs(t, parameter.Validate([]parameter.Parameter{a, b}), parameter.ErrDuplicateName)
}

func TestValue_Equal(t *testing.T) {
	require.True(t, parameter.IntValue(3).Equal(parameter.IntValue(3)))
	require.False(t, parameter.IntValue(3).Equal(parameter.IntValue(4)))
	require.False(t, parameter.IntValue(3).Equal(parameter.FloatValue(3)))
}
