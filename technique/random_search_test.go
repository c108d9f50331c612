package technique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autotune/technique"
)

func TestRandomSearch_CoordinatesInUnitRange(t *testing.T) {
	rs := technique.NewRandomSearch(technique.WithSeed(42), technique.WithRandomBatchSize(5))
	rs.Initialize(3)

	batch := rs.NextCoordinates()
	require.Len(t, batch, 5)
	for _, c := range batch {
		require.Len(t, c, 3)
		for _, v := range c {
			assert.Greater(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestRandomSearch_SameSeedIsDeterministic(t *testing.T) {
	a := technique.NewRandomSearch(technique.WithSeed(7))
	a.Initialize(2)
	b := technique.NewRandomSearch(technique.WithSeed(7))
	b.Initialize(2)

	assert.Equal(t, a.NextCoordinates(), b.NextCoordinates())
	assert.Equal(t, a.NextCoordinates(), b.NextCoordinates())
}
