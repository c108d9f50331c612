package searchspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/autotune/parameter"
	"github.com/katalvlaran/autotune/searchspace"
)

// divisorWorkgroupSpace builds the N/WPT/LS chain for a random small N,
// returning both the SearchSpace and the brute-force count of valid
// (WPT,LS) pairs, for the property tests below.
func divisorWorkgroupSpace(t *rapid.T, n int64) (*searchspace.SearchSpace, int64) {
	nRange, err := parameter.IntSetRange(n)
	require.NoError(t, err)
	wptRange, err := parameter.NewIntervalRange(1, n, 1)
	require.NoError(t, err)
	lsRange, err := parameter.NewIntervalRange(1, n, 1)
	require.NoError(t, err)

	nParam, err := parameter.New("N", nRange, nil)
	require.NoError(t, err)
	wpt, err := parameter.New("WPT", wptRange, &parameter.Constraint{
		DependsOn: []string{"N"},
		Predicate: func(b map[string]parameter.Value) bool {
			return b["N"].Int()%b["WPT"].Int() == 0
		},
	})
	require.NoError(t, err)
	ls, err := parameter.New("LS", lsRange, &parameter.Constraint{
		DependsOn: []string{"N", "WPT"},
		Predicate: func(b map[string]parameter.Value) bool {
			return (b["N"].Int()/b["WPT"].Int())%b["LS"].Int() == 0
		},
	})
	require.NoError(t, err)

	sp, err := searchspace.Generate([]parameter.Parameter{nParam, wpt, ls})
	require.NoError(t, err)

	var brute int64
	for w := int64(1); w <= n; w++ {
		if n%w != 0 {
			continue
		}
		rest := n / w
		for l := int64(1); l <= n; l++ {
			if rest%l == 0 {
				brute++
			}
		}
	}

	return sp, brute
}

// TestProperty_SizeMatchesBruteForce is the first invariant: for
// every parameter ordering and constraint set, |SP| equals the number of
// valid configurations enumerated by brute force (checked on small inputs).
func TestProperty_SizeMatchesBruteForce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(1, 24).Draw(t, "n")
		sp, brute := divisorWorkgroupSpace(t, n)
		require.Equal(t, brute, sp.Size())
	})
}

// TestProperty_IndexToConfigIsValidBijection is the second
// invariant: every idx in [0,|SP|) maps to a valid configuration, and
// distinct indices map to distinct configurations (injectivity; combined
// with the brute-force count match above this gives bijection onto the
// valid set).
func TestProperty_IndexToConfigIsValidBijection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(1, 16).Draw(t, "n")
		sp, _ := divisorWorkgroupSpace(t, n)

		seen := make(map[int64]parameter.Configuration, sp.Size())
		for i := int64(0); i < sp.Size(); i++ {
			cfg, err := sp.IndexToConfig(i)
			require.NoError(t, err)

			require.Zero(t, cfg["N"].Int()%cfg["WPT"].Int())
			require.Zero(t, (cfg["N"].Int()/cfg["WPT"].Int())%cfg["LS"].Int())

			key := cfg["WPT"].Int()*1000 + cfg["LS"].Int()
			_, dup := seen[key]
			require.False(t, dup, "index %d duplicates an earlier configuration", i)
			seen[key] = cfg
		}
	})
}

// TestProperty_CoordToConfigAlwaysValid is the third invariant:
// every coordinate in (0,1]^D yields a valid configuration by
// construction.
func TestProperty_CoordToConfigAlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(1, 16).Draw(t, "n")
		sp, _ := divisorWorkgroupSpace(t, n)

		coords := make([]float64, sp.Dimensions())
		for i := range coords {
			coords[i] = rapid.Float64Range(1e-9, 1.0).Draw(t, "c")
		}

		cfg, err := sp.CoordToConfig(coords)
		require.NoError(t, err)
		require.Zero(t, cfg["N"].Int()%cfg["WPT"].Int())
		require.Zero(t, (cfg["N"].Int()/cfg["WPT"].Int())%cfg["LS"].Int())
	})
}

// TestProperty_ConfigToIndexRoundTrip is the round-trip property
// restricted to indices (always boundary-aligned): index_to_config then
// config_to_index recovers the original index.
func TestProperty_ConfigToIndexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(1, 16).Draw(t, "n")
		sp, _ := divisorWorkgroupSpace(t, n)
		if sp.Size() == 0 {
			return
		}
		idx := rapid.Int64Range(0, sp.Size()-1).Draw(t, "idx")

		cfg, err := sp.IndexToConfig(idx)
		require.NoError(t, err)
		back, err := sp.ConfigToIndex(cfg)
		require.NoError(t, err)
		require.Equal(t, idx, back)
	})
}
