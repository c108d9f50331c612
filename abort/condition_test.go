package abort_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/autotune/abort"
	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/parameter"
	"github.com/katalvlaran/autotune/tuningdata"
)

func newTD(size int64) *tuningdata.TuningData {
	return tuningdata.New(nil, size, size, time.Millisecond, "test-technique", "test-abort")
}

func cfg() parameter.Configuration {
	return parameter.Configuration{"x": parameter.IntValue(1)}
}

func TestEvaluations(t *testing.T) {
	td := newTD(100)
	e := abort.NewEvaluations(3)
	assert.Equal(t, "Evaluations(3)", e.ID())

	assert.False(t, e.Stop(td))
	td.RecordValid(cfg(), 0, nil, 1.0, time.Now())
	td.RecordValid(cfg(), 1, nil, 1.0, time.Now())
	assert.False(t, e.Stop(td))
	td.RecordInvalid(cfg(), 2, nil, cost.DefaultPenalty, time.Now())
	assert.True(t, e.Stop(td))
}

func TestFraction_Rejects(t *testing.T) {
	_, err := abort.NewFraction(0)
	assert.ErrorIs(t, err, abort.ErrInvalidFraction)
	_, err = abort.NewFraction(1.5)
	assert.ErrorIs(t, err, abort.ErrInvalidFraction)
}

func TestFraction_StopsAtCeiling(t *testing.T) {
	td := newTD(10) // ceil(0.25*10) = 3
	fr, err := abort.NewFraction(0.25)
	assert.NoError(t, err)

	for i := int64(0); i < 2; i++ {
		td.RecordValid(cfg(), i, nil, 1.0, time.Now())
		assert.False(t, fr.Stop(td))
	}
	td.RecordValid(cfg(), 2, nil, 1.0, time.Now())
	assert.True(t, fr.Stop(td))
}

func TestDuration(t *testing.T) {
	td := newTD(100)
	d := abort.NewDuration(10 * time.Millisecond)
	assert.False(t, d.Stop(td))
	time.Sleep(15 * time.Millisecond)
	assert.True(t, d.Stop(td))
}

func TestCostThreshold(t *testing.T) {
	td := newTD(100)
	ct := abort.NewCostThreshold(cost.Cost(5.0))
	assert.False(t, ct.Stop(td)) // no cost recorded yet

	td.RecordValid(cfg(), 0, nil, 10.0, time.Now())
	assert.False(t, ct.Stop(td))
	td.RecordValid(cfg(), 1, nil, 5.0, time.Now())
	assert.True(t, ct.Stop(td))
}

func TestAndOr(t *testing.T) {
	td := newTD(100)
	never := abort.NewEvaluations(1 << 30)
	always := abort.NewEvaluations(0)

	assert.False(t, abort.And(never, always).Stop(td))
	assert.True(t, abort.Or(never, always).Stop(td))
	assert.Contains(t, abort.And(never, always).ID(), "And(")
	assert.Contains(t, abort.Or(never, always).ID(), "Or(")
}

func TestSpeedupEvaluations_StallDetected(t *testing.T) {
	td := newTD(1000)
	se := abort.NewSpeedupEvaluations(2.0, 5)

	// First evaluation establishes a baseline cost of 1.0; every further
	// evaluation reports the same cost, so the factor-2 improvement never
	// materializes and the condition must fire once the window fills.
	for i := int64(0); i < 6; i++ {
		td.RecordValid(cfg(), i, nil, 1.0, time.Now())
		stopped := se.Stop(td)
		if i < 5 {
			assert.Falsef(t, stopped, "must not stop before the window (i=%d)", i)
		} else {
			assert.Truef(t, stopped, "must stop once the trailing window fills (i=%d)", i)
		}
	}
}

func TestSpeedupEvaluations_ImprovingEnoughNeverStops(t *testing.T) {
	td := newTD(1000)
	se := abort.NewSpeedupEvaluations(2.0, 3)

	costs := []cost.Cost{8.0, 7.0, 6.0, 3.0, 1.0, 0.1}
	for i, c := range costs {
		td.RecordValid(cfg(), int64(i), nil, c, time.Now())
		assert.False(t, se.Stop(td))
	}
}

func TestSpeedupDuration_StallDetected(t *testing.T) {
	td := newTD(1000)
	sd := abort.NewSpeedupDuration(2.0, 5*time.Millisecond)

	base := time.Now()
	td.RecordValid(cfg(), 0, nil, 1.0, base)
	assert.False(t, sd.Stop(td))

	td.RecordValid(cfg(), 1, nil, 1.0, base.Add(10*time.Millisecond))
	assert.True(t, sd.Stop(td))
}
