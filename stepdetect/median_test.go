package stepdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWeightedMedianDist_EmptyAndSingle covers the degenerate inputs of
// spec.md 4.1: empty returns (0,0), a single element returns
// (value, 0).
func TestWeightedMedianDist_EmptyAndSingle(t *testing.T) {
	mu, dist := weightedMedianDist(nil, nil)
	assert.Equal(t, 0.0, mu)
	assert.Equal(t, 0.0, dist)

	mu, dist = weightedMedianDist([]float64{7}, []float64{3})
	assert.Equal(t, 7.0, mu)
	assert.Equal(t, 0.0, dist)
}

// TestWeightedMedianDist_AllEqual covers all-equal values: the median
// is that value and dist is zero regardless of weights.
func TestWeightedMedianDist_AllEqual(t *testing.T) {
	mu, dist := weightedMedianDist([]float64{4, 4, 4, 4}, []float64{1, 2, 3, 4})
	assert.Equal(t, 4.0, mu)
	assert.Equal(t, 0.0, dist)
}

// TestWeightedMedianDist_TieRule pins spec.md 8 scenario 5: an even
// split with equal weights averages the two straddling values, while
// an unequal split that tips the balance picks the tipping element
// outright.
func TestWeightedMedianDist_TieRule(t *testing.T) {
	mu, _ := weightedMedianDist([]float64{0, 10}, []float64{1, 1})
	assert.Equal(t, 5.0, mu, "equal weights should average the straddling pair")

	mu, _ = weightedMedianDist([]float64{0, 10}, []float64{1, 3})
	assert.Equal(t, 10.0, mu, "heavier second weight should tip the median to it")
}

// TestWeightedMedianDist_Dist checks the second-pass L1 deviation on a
// simple, hand-computable case.
func TestWeightedMedianDist_Dist(t *testing.T) {
	// sorted: 1,1,1,5,5,5, equal weights; W=6, half=3, cumulative hits
	// 3 exactly at the third 1 with a next element (5) => mu=3.
	mu, dist := weightedMedianDist([]float64{1, 1, 1, 5, 5, 5}, []float64{1, 1, 1, 1, 1, 1})
	assert.Equal(t, 3.0, mu)
	assert.Equal(t, 12.0, dist) // 3*|1-3| + 3*|5-3| = 6+6
}

// TestWeightedMedianDist_ValueShiftInvariant checks spec.md 8: shifting
// every value by a constant shifts mu by the same constant and leaves
// dist unchanged.
func TestWeightedMedianDist_ValueShiftInvariant(t *testing.T) {
	values := []float64{2, 9, -3, 4, 4, 11}
	weights := []float64{1, 2, 1, 3, 1, 2}
	mu, dist := weightedMedianDist(values, weights)

	shifted := make([]float64, len(values))
	for i, v := range values {
		shifted[i] = v + 100
	}
	muShifted, distShifted := weightedMedianDist(shifted, weights)

	assert.InDelta(t, mu+100, muShifted, 1e-9)
	assert.InDelta(t, dist, distShifted, 1e-9)
}

// TestWeightedMedianDist_WeightRescaleInvariant checks spec.md 8:
// multiplying every weight by a positive constant leaves mu unchanged
// and scales dist by the same constant.
func TestWeightedMedianDist_WeightRescaleInvariant(t *testing.T) {
	values := []float64{2, 9, -3, 4, 4, 11}
	weights := []float64{1, 2, 1, 3, 1, 2}
	mu, dist := weightedMedianDist(values, weights)

	const alpha = 2.5
	scaled := make([]float64, len(weights))
	for i, w := range weights {
		scaled[i] = w * alpha
	}
	muScaled, distScaled := weightedMedianDist(values, scaled)

	assert.InDelta(t, mu, muScaled, 1e-9)
	assert.InDelta(t, dist*alpha, distScaled, 1e-9)
}
