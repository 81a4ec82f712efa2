// Package builder_test contains unit tests for the WeightFn implementations,
// covering sampled ranges, nil-RNG fallbacks and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_minNegative", func() builder.WeightFn { return builder.IntUniformWeightFn(-1, 5) }},
		{"IntUniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntUniformWeightFn(5, 4) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFn_Sampling(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	require.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))

	uni := builder.UniformWeightFn(2, 4)
	ints := builder.IntUniformWeightFn(1, 3)
	seen := map[float64]bool{}
	for i := 0; i < 500; i++ {
		w := uni(rng)
		require.GreaterOrEqual(t, w, 2.0)
		require.Less(t, w, 4.0)

		k := ints(rng)
		require.Contains(t, []float64{1, 2, 3}, k)
		seen[k] = true
	}
	require.Len(t, seen, 3)

	require.Equal(t, 5.0, builder.UniformWeightFn(5, 5)(rng))

	// Without an RNG, stochastic functions fall back to the default weight.
	require.Equal(t, builder.DefaultEdgeWeight, uni(nil))
	require.Equal(t, builder.DefaultEdgeWeight, ints(nil))
}
